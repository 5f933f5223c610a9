package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/hcfairbanks/tsw-hud-project-sub000/config"
	"github.com/hcfairbanks/tsw-hud-project-sub000/internal/logging"
	"github.com/hcfairbanks/tsw-hud-project-sub000/pipeline"
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

func main() {
	// Optional .env for local development; real environments set vars
	// directly.
	_ = godotenv.Load()

	logging.Setup()

	app := &cli.App{
		Name:        "tswhud",
		Description: "Reconciles recorded route traces into route artifacts",

		Commands: []*cli.Command{
			reconcileCommand(),
			stopsCommand(),
			infoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Usage:   "path to config.yml",
		EnvVars: []string{"TSWHUD_CONFIG"},
	}
}

func loadConfig(c *cli.Context) error {
	return config.LoadAppConfig(c.String("config"))
}

func reconcileCommand() *cli.Command {
	return &cli.Command{
		Name:      "reconcile",
		Usage:     "run the reconciliation pipeline over recording files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			configFlag(),
			&cli.Float64Flag{
				Name:  "epsilon",
				Usage: "override simplification tolerance in meters",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "out-suffix",
				Usage: "override output file suffix",
			},
			&cli.BoolFlag{
				Name:  "indent",
				Usage: "write indented JSON",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "override number of files processed in parallel",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("no input files given")
			}
			if err := loadConfig(c); err != nil {
				return err
			}

			opts := config.Config.Options()
			if eps := c.Float64("epsilon"); eps >= 0 {
				opts.SimplifyEpsilonMeters = eps
			}
			suffix := config.Config.Output.Suffix
			if s := c.String("out-suffix"); s != "" {
				suffix = s
			}
			indent := config.Config.Output.Indent || c.Bool("indent")
			workers := config.Config.Workers
			if w := c.Int("workers"); w > 0 {
				workers = w
			}

			return reconcileFiles(c.Args().Slice(), opts, suffix, indent, workers)
		},
	}
}

func stopsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stops",
		Usage:     "print the dwell clusters detected in a recording",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{configFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one input file")
			}
			if err := loadConfig(c); err != nil {
				return err
			}

			doc, err := readDocument(c.Args().First())
			if err != nil {
				return err
			}

			opts := config.Config.Options()
			detector := pipeline.StopDetector{
				NoiseRadiusMeters: opts.GPSNoiseRadiusMeters,
				MinPoints:         opts.MinPointsForStop,
				MinDuration:       time.Duration(opts.MinStopDurationSeconds) * time.Second,
			}
			stops, missing := detector.Detect(doc.Coordinates)

			for i, s := range stops {
				fmt.Printf("%2d  %s  %6.1fs  %4d points  [%d..%d]  (%.6f, %.6f)\n",
					i+1, route.FormatTimestamp(s.StartTime), s.DurationSeconds,
					s.PointCount, s.StartIndex, s.EndIndex,
					s.Centroid.Latitude, s.Centroid.Longitude)
			}
			fmt.Printf("%d stops detected, %d coordinates without timestamps\n", len(stops), missing)
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print a summary of a recording",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one input file")
			}

			doc, err := readDocument(c.Args().First())
			if err != nil {
				return err
			}

			length := pipeline.NewWalker(doc.Coordinates).TotalLength()
			fmt.Printf("route:      %s\n", doc.RouteName)
			fmt.Printf("timetable:  %s\n", doc.TimetableID)
			fmt.Printf("mode:       %s\n", doc.RecordingMode)
			fmt.Printf("points:     %d\n", len(doc.Coordinates))
			fmt.Printf("markers:    %d\n", len(doc.Markers))
			fmt.Printf("entries:    %d\n", len(doc.Timetable))
			fmt.Printf("length:     %.1f m\n", length)
			return nil
		},
	}
}
