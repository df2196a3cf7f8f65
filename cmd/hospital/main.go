package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/console"
	"github.com/clinicore/hospital/internal/document"
	"github.com/clinicore/hospital/internal/hospital"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital",
		Short: "In-memory hospital appointment registry",
	}

	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.Env == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive registry menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}
			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := hospital.NewRegistry(cfg, logger)
			c := console.New(reg, cfg, logger, os.Stdin, os.Stdout)

			logger.Info().Str("env", cfg.Env).Msg("console starting")
			if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Print the full report for a registry document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}
			path := cfg.DataFile
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := document.Load(path)
			if err != nil {
				return err
			}
			reg, err := doc.Restore(cfg, newLogger(cfg))
			if err != nil {
				return fmt.Errorf("restore registry: %w", err)
			}

			fmt.Print(reg.FullReport())
			return nil
		},
	}
	return cmd
}

func exportCmd() *cobra.Command {
	var in, out, sortName string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Re-emit a registry document with a chosen appointment order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}
			if in == "" {
				in = cfg.DataFile
			}
			if out == "" {
				out = cfg.DataFile
			}

			order, err := parseSortOrder(sortName)
			if err != nil {
				return err
			}

			doc, err := document.Load(in)
			if err != nil {
				return err
			}
			reg, err := doc.Restore(cfg, newLogger(cfg))
			if err != nil {
				return fmt.Errorf("restore registry: %w", err)
			}

			if err := document.Save(out, document.Snapshot(reg, order)); err != nil {
				return err
			}
			fmt.Printf("exported %s -> %s (order: %s)\n", in, out, order)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input document (default: DATA_FILE)")
	cmd.Flags().StringVar(&out, "out", "", "output document (default: DATA_FILE)")
	cmd.Flags().StringVar(&sortName, "sort", "none", "appointment order: none|date|start|patient|doctor")
	return cmd
}

func parseSortOrder(name string) (document.SortOrder, error) {
	switch name {
	case "none", "":
		return document.SortNone, nil
	case "date":
		return document.SortByDate, nil
	case "start":
		return document.SortByStartTime, nil
	case "patient":
		return document.SortByPatientID, nil
	case "doctor":
		return document.SortByDoctorID, nil
	}
	return document.SortNone, fmt.Errorf("unknown sort order %q", name)
}

func sweepCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Close past-dated active appointments in a registry document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}
			if file == "" {
				file = cfg.DataFile
			}
			logger := newLogger(cfg)

			doc, err := document.Load(file)
			if err != nil {
				return err
			}

			start := time.Now()
			closed := 0
			today := hospital.DateOf(time.Now())
			for i, rec := range doc.Appointments {
				if rec.Status != string(hospital.StatusActive) {
					continue
				}
				date, err := hospital.ParseDate(rec.Date)
				if err != nil {
					return fmt.Errorf("appointment %d: %w", i, err)
				}
				if date.Before(today) {
					doc.Appointments[i].Status = string(hospital.StatusClosed)
					closed++
				}
			}

			if err := document.Save(file, doc); err != nil {
				return err
			}
			logger.Info().
				Int("closed", closed).
				Str("file", file).
				Dur("took", time.Since(start)).
				Msg("sweep complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "document to sweep (default: DATA_FILE)")
	return cmd
}
