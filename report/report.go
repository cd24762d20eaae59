// Package report renders evaluation results for people.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"route-evaluator/entities"
)

const (
	VerdictTake = "TAKE IT"
	VerdictSkip = "SKIP IT"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Round2 rounds v to cents, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Money formats v as US dollars with two decimals, e.g. "$1,234.50" or "-$19.37".
func Money(v float64) string {
	v = Round2(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	symbol := printer.Sprint(currency.NarrowSymbol(currency.USD))
	return sign + symbol + printer.Sprintf("%.2f", math.Abs(v))
}

// Verdict names the recommendation for r.
func Verdict(r entities.EvaluationResult) string {
	if r.Accepted {
		return VerdictTake
	}
	return VerdictSkip
}

// Rounded returns a copy of r with every money and distance field rounded
// to two decimals. Accepted is left as computed.
func Rounded(r entities.EvaluationResult) entities.EvaluationResult {
	r.Payout = Round2(r.Payout)
	r.TotalCostToComplete = Round2(r.TotalCostToComplete)
	r.CostToReturnDirectly = Round2(r.CostToReturnDirectly)
	r.NetGain = Round2(r.NetGain)
	for _, leg := range []*entities.LegResult{&r.Legs.Deadhead, &r.Legs.Paid, &r.Legs.Return, &r.Legs.GoHome} {
		leg.DistanceMiles = Round2(leg.DistanceMiles)
		leg.Cost = Round2(leg.Cost)
	}
	return r
}

// Summary returns the evaluation block shown to the driver.
func Summary(r entities.EvaluationResult) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Route Evaluation:")
	fmt.Fprintf(&b, "  From %s to %s, ending at home base (%s)\n", r.Origin, r.Destination, r.HomeBase)
	fmt.Fprintf(&b, "  Payout Offered: %s\n", Money(r.Payout))
	fmt.Fprintf(&b, "  Cost to Complete: %s\n", Money(r.TotalCostToComplete))
	fmt.Fprintf(&b, "  Cost to Go Home Instead: %s\n", Money(r.CostToReturnDirectly))
	fmt.Fprintf(&b, "  Net Gain if Taken: %s\n", Money(r.NetGain))
	fmt.Fprintf(&b, "\n%s", Verdict(r))
	return b.String()
}

// Legs returns one line per leg with miles, billed hours and cost.
func Legs(r entities.EvaluationResult) string {
	var b strings.Builder
	for _, l := range []struct {
		name string
		leg  entities.LegResult
	}{
		{"deadhead", r.Legs.Deadhead},
		{"paid", r.Legs.Paid},
		{"return", r.Legs.Return},
		{"go home", r.Legs.GoHome},
	} {
		fmt.Fprintf(&b, "  %-8s %s -> %s: %.2f mi, %dh, %s\n",
			l.name, l.leg.From, l.leg.To, l.leg.DistanceMiles, l.leg.DurationHours, Money(l.leg.Cost))
	}
	return b.String()
}

// Render writes the summary, optionally followed by the leg breakdown.
func Render(w io.Writer, r entities.EvaluationResult, withLegs bool) error {
	if _, err := fmt.Fprintln(w, Summary(r)); err != nil {
		return err
	}
	if !withLegs {
		return nil
	}
	_, err := fmt.Fprint(w, "\n", Legs(r))
	return err
}
