//nolint:wrapcheck
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/farcloser/baseline"
	"github.com/farcloser/baseline/internal/output"
)

type console struct {
	out   io.Writer
	label *color.Color
}

func newConsole(out io.Writer, noColor bool) *console {
	label := color.New(color.FgGreen, color.Bold)

	if noColor || !isTerminal(out) {
		label.DisableColor()
	}

	return &console{out: out, label: label}
}

func (c *console) success(outPath string) {
	c.label.Fprint(c.out, "OK:")
	fmt.Fprintf(c.out, " Report written to: %s\n", outPath)
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec // file descriptors fit in an int
}

func validateSummaryFormat(name string) error {
	if name == "" {
		return nil
	}

	_, err := format.GetFormatter(name)

	return err
}

func printSummary(out io.Writer, result *baseline.Result, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := &format.Data{
		Object: result.Dir,
		Meta:   output.ResultToMap(result),
	}

	return formatter.PrintAll([]*format.Data{data}, out)
}
