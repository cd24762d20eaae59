package utils

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"route-evaluator/entities"
	"route-evaluator/report"
)

type Message struct {
	Content string    `json:"content"`
	Topic   string    `json:"topic,omitempty"`
	TimeNow time.Time `json:"time_now"`
}

// Notifier posts plain-text messages to an ntfy server. A Notifier with no
// topic is disabled and drops every message.
type Notifier struct {
	Server string
	Topic  string
	Client *http.Client
}

func NewNotifier(server, topic string) *Notifier {
	return &Notifier{
		Server: strings.TrimRight(server, "/"),
		Topic:  topic,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.Topic != ""
}

func (n *Notifier) SendNotification(message Message) error {
	if !n.Enabled() {
		return nil
	}
	if message.Topic == "" {
		message.Topic = n.Topic
	}
	message.TimeNow = time.Now()
	resp, err := n.Client.Post(n.Server+"/"+message.Topic, "text/plain",
		strings.NewReader(message.Content+"\nTime: "+message.TimeNow.Format(time.RFC3339)))
	if err != nil {
		return fmt.Errorf("ntfy post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("ntfy post: status %d", resp.StatusCode)
	}
	return nil
}

func FormatErrorNotification(err error, context string) Message {
	return Message{
		Content: "Error occurred: " + err.Error() + " | Context: " + context,
		TimeNow: time.Now(),
	}
}

func FormatVerdictNotification(r entities.EvaluationResult) Message {
	return Message{
		Content: fmt.Sprintf("%s: %s -> %s pays %s, costs %s, nets %s",
			report.Verdict(r), r.Origin, r.Destination,
			report.Money(r.Payout), report.Money(r.TotalCostToComplete), report.Money(r.NetGain)),
		TimeNow: time.Now(),
	}
}
