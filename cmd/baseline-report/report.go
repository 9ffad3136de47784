package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/baseline"
	"github.com/farcloser/baseline/internal/logdir"
	"github.com/farcloser/baseline/internal/report"
	"github.com/farcloser/baseline/version"
)

const argsUsage = "<logdir> <output_report_md>"

var (
	errUsage    = errors.New("usage error")
	errFailures = errors.New("failed checks present")
)

// reportConfig is everything a run needs, resolved from the command line.
type reportConfig struct {
	logDir        string
	outPath       string
	pdfPath       string
	summaryFormat string
	noColor       bool
	opts          report.Options
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      version.Name(),
		Usage:     "Aggregate security baseline check logs into a Markdown status report",
		Version:   version.Version() + " " + version.Commit(),
		ArgsUsage: argsUsage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "Report language: sv, en",
				Value:   "sv",
			},
			&cli.StringFlag{
				Name:  "strings",
				Usage: "YAML file overriding report text (keys: title, generated, log_files, summary, ...)",
			},
			&cli.StringFlag{
				Name:  "pdf",
				Usage: "Also render the report as a PDF file at this path",
			},
			&cli.StringFlag{
				Name:    "print-summary",
				Aliases: []string{"f"},
				Usage:   "Print the summary after writing the report: console, json, markdown",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return fmt.Errorf("%w: %w", errUsage, err)
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				fmt.Fprintf(os.Stderr, "Usage: %s %s\n", version.Name(), argsUsage)

				return fmt.Errorf("%w: expected exactly two arguments, got %d", errUsage, cmd.NArg())
			}

			config, err := configFromCommand(cmd)
			if err != nil {
				return err
			}

			return runReport(config, os.Stdout)
		},
	}
}

func configFromCommand(cmd *cli.Command) (*reportConfig, error) {
	locale, err := report.ParseLocale(cmd.String("locale"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	opts := report.Options{Strings: report.StringsFor(locale)}

	if path := cmd.String("strings"); path != "" {
		opts.Strings, err = report.LoadStrings(path, opts.Strings)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
	}

	summaryFormat := cmd.String("print-summary")
	if err := validateSummaryFormat(summaryFormat); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	outPath, err := logdir.Resolve(cmd.Args().Get(1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	config := &reportConfig{
		logDir:        cmd.Args().Get(0),
		outPath:       outPath,
		summaryFormat: summaryFormat,
		noColor:       cmd.Bool("no-color"),
		opts:          opts,
	}

	if path := cmd.String("pdf"); path != "" {
		config.pdfPath, err = logdir.Resolve(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
	}

	return config, nil
}

// runReport analyzes the log directory and writes the report.
// It returns errFailures once the report is written if any check failed.
func runReport(config *reportConfig, stdout io.Writer) error {
	result, err := baseline.Analyze(config.logDir)
	if err != nil {
		return err
	}

	opts := config.opts
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	if err := report.Save(config.outPath, report.Markdown(result, opts)); err != nil {
		return err
	}

	if config.pdfPath != "" {
		if err := report.WritePDF(config.pdfPath, result, opts); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "PDF written to: %s\n", config.pdfPath)
	}

	console := newConsole(stdout, config.noColor)
	console.success(config.outPath)

	if config.summaryFormat != "" {
		if err := printSummary(stdout, result, config.summaryFormat); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%w: %d", errFailures, result.Counts.Fail)
	}

	return nil
}
