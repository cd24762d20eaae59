package utils

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-evaluator/entities"
)

func TestNotifier_Disabled(t *testing.T) {
	n := NewNotifier("http://127.0.0.1:1", "")
	assert.False(t, n.Enabled())
	assert.NoError(t, n.SendNotification(Message{Content: "dropped"}))

	var nilNotifier *Notifier
	assert.NoError(t, nilNotifier.SendNotification(Message{Content: "dropped"}))
}

func TestNotifier_PostsToTopic(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL+"/", "route-verdicts")
	msg := FormatVerdictNotification(entities.EvaluationResult{
		Origin: "A", Destination: "B", Payout: 100, TotalCostToComplete: 29.37, NetGain: 70.63, Accepted: true,
	})
	require.NoError(t, n.SendNotification(msg))

	assert.Equal(t, "/route-verdicts", gotPath)
	assert.Contains(t, gotBody, "TAKE IT: A -> B pays $100.00, costs $29.37, nets $70.63")
	assert.Contains(t, gotBody, "\nTime: ")
}

func TestNotifier_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL, "t").SendNotification(FormatErrorNotification(errors.New("boom"), "Evaluate"))
	assert.ErrorContains(t, err, "429")
}

func TestFormatErrorNotification(t *testing.T) {
	msg := FormatErrorNotification(errors.New("boom"), "Evaluate Handler")
	assert.Equal(t, "Error occurred: boom | Context: Evaluate Handler", msg.Content)
}
