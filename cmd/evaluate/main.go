// Command evaluate prices a single delivery job from the command line.
//
//	evaluate -pickup 44111 -dropoff 44106 -payout 71
//	evaluate -inputs route/db/inputs.json -legs
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"

	"route-evaluator/locations"
	"route-evaluator/report"
	"route-evaluator/trip"
	"route-evaluator/utils"
)

// inputs mirrors the file the pickup form writes.
type inputs struct {
	Pickup    string  `json:"pickup"`
	Dropoff   string  `json:"dropoff"`
	Payout    float64 `json:"payout"`
	Timestamp string  `json:"timestamp,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "evaluate:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	pickup := fs.String("pickup", "", "pickup ZIP code")
	dropoff := fs.String("dropoff", "", "dropoff ZIP code")
	payout := fs.Float64("payout", 0, "payout offered in dollars")
	inputsFile := fs.String("inputs", "", "JSON file with pickup, dropoff and payout")
	locationsFile := fs.String("locations", "", "location table JSON (default: LOCATIONS_FILE or the bundled table)")
	legs := fs.Bool("legs", false, "print the per-leg breakdown")
	debug := fs.Bool("debug", false, "dump the full evaluation result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		return err
	}

	in := inputs{Pickup: *pickup, Dropoff: *dropoff, Payout: *payout}
	if *inputsFile != "" {
		if in, err = readInputs(*inputsFile); err != nil {
			return err
		}
	}
	in.Pickup = strings.TrimSpace(in.Pickup)
	in.Dropoff = strings.TrimSpace(in.Dropoff)
	if in.Pickup == "" || in.Dropoff == "" {
		return errors.New("please specify both pickup and dropoff ZIPs")
	}
	if in.Payout < 0 {
		return errors.New("payout must not be negative")
	}

	path := *locationsFile
	if path == "" {
		path = cfg.LocationsFile
	}
	table, err := locations.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("load locations: %w", err)
	}

	res, err := trip.Evaluate(table, cfg.Trip, in.Pickup, in.Dropoff, in.Payout)
	if err != nil {
		return err
	}

	if *debug {
		fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(res))
	}
	return report.Render(stdout, res, *legs)
}

func readInputs(path string) (inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inputs{}, err
	}
	var in inputs
	if err := json.Unmarshal(data, &in); err != nil {
		return inputs{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return in, nil
}
