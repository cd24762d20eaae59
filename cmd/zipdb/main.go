// Command zipdb builds a location table by geocoding ZIP codes with the
// Google Maps Geocoding API.
//
//	GOOGLE_MAPS_API_KEY=... zipdb -zips 44107,44111,44106 -radius 100 -out locations.json
//	zipdb -merge locations.json -graph graph.json -hop 25
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"route-evaluator/entities"
	"route-evaluator/locations"
	"route-evaluator/logger"
	"route-evaluator/utils"
)

type resolver interface {
	Build(ctx context.Context, ids []string) (entities.LocationTable, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newResolver := func(cfg utils.Config) (resolver, error) {
		if err := cfg.RequireMapsKey(); err != nil {
			return nil, err
		}
		return locations.NewMapsGeocoder(cfg.GoogleMapsAPIKey)
	}
	if err := run(ctx, os.Args[1:], newResolver, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "zipdb:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, newResolver func(utils.Config) (resolver, error), stdout io.Writer) error {
	fs := flag.NewFlagSet("zipdb", flag.ContinueOnError)
	zips := fs.String("zips", "", "comma-separated ZIP codes to geocode")
	merge := fs.String("merge", "", "existing location table to extend")
	radius := fs.Float64("radius", 0, "keep only ZIPs within this many miles of the home base (0 keeps all)")
	out := fs.String("out", "", "output file (default stdout)")
	graph := fs.String("graph", "", "also write the local-hop adjacency graph to this file")
	hop := fs.Float64("hop", locations.DefaultHopMiles, "longest hop in miles linked in the -graph output")
	timeout := fs.Duration("timeout", 2*time.Minute, "overall geocoding timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(cfg.Log, os.Stderr)

	table := entities.LocationTable{}
	if *merge != "" {
		if table, err = locations.LoadFile(*merge); err != nil {
			return fmt.Errorf("load %s: %w", *merge, err)
		}
	}

	var ids []string
	for _, id := range strings.Split(*zips, ",") {
		id = strings.TrimSpace(id)
		if _, known := table[id]; id != "" && !known {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 && len(table) == 0 {
		return errors.New("nothing to do: pass -zips or -merge")
	}

	if len(ids) > 0 {
		r, err := newResolver(cfg)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()

		resolved, err := r.Build(ctx, ids)
		if err != nil {
			return err
		}
		for id, c := range resolved {
			table[id] = c
		}
		log.Info("geocoded ZIP codes", "count", len(resolved))
	}

	if *radius > 0 {
		home, ok := table.Lookup(cfg.Trip.HomeBase)
		if !ok {
			return fmt.Errorf("home base %s is not in the table; add it to -zips", cfg.Trip.HomeBase)
		}
		before := len(table)
		table = locations.WithinRadius(table, home, *radius)
		log.Info("filtered by radius", "radius_miles", *radius, "kept", len(table), "dropped", before-len(table))
	}

	if *graph != "" {
		g, err := locations.Graph(table, *hop)
		if err != nil {
			return err
		}
		if err := writeFile(*graph, func(w io.Writer) error { return locations.WriteGraph(w, g) }); err != nil {
			return err
		}
		log.Info("wrote adjacency graph", "file", *graph, "hop_miles", *hop, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	}

	write := func(w io.Writer) error { return locations.Write(w, table) }
	if *out == "" {
		return write(stdout)
	}
	return writeFile(*out, write)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
