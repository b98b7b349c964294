// Package cli implements the boxtable command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/boxtable"
)

type commandParams struct {
	delimiter delimiterValue
	borders   intervalValue
	style     styleValue
	output    formatValue
	logLevel  levelValue
	transpose bool
	reverse   bool
}

func newCommandParams() commandParams {
	def := boxtable.DefaultConfig()
	return commandParams{
		delimiter: delimiterValue{r: def.Delimiter},
		borders:   intervalValue{i: def.Interval},
		style:     styleValue{s: def.Style},
		output:    formatValue{f: def.Output},
		logLevel:  levelValue{l: logrus.WarnLevel},
	}
}

// config builds the pipeline configuration. An explicit --style turns off
// style detection in reverse mode.
func (p *commandParams) config(cmd *cobra.Command) boxtable.Config {
	return boxtable.Config{
		Delimiter:   p.delimiter.r,
		Interval:    p.borders.i,
		Transpose:   p.transpose,
		Style:       p.style.s,
		DetectStyle: !cmd.Flags().Changed("style"),
		Reverse:     p.reverse,
		Output:      p.output.f,
	}
}

// exitError carries the process exit status for an error.
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{err: err, code: 2}
}

// ExitCode maps an error returned by the command to a process exit status:
// 0 on success, 2 for usage and configuration errors, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, boxtable.ErrInvalidConfig) {
		return 2
	}
	return 1
}

// NewCommand returns the boxtable command reading from in and writing the
// result to out. Logs go to errOut.
func NewCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	params := newCommandParams()
	cmd := &cobra.Command{
		Use:   "boxtable [file]",
		Short: "Format delimited text as a bordered table",
		Long: `Format delimited text as a bordered table.

Each non-blank input line becomes a row, split on the delimiter. Short rows
are padded with empty cells. If no file is given, or the file is '-', input
is read from stdin.

A thick separator is drawn after every n-th row, where n is set with '-b'.
'-b 0' draws only thin separators and '-b x' drops the borders entirely.

With '-r' the input is a table rendered by this command. Its borders are
stripped and the cells are written back joined by the delimiter. The style is
detected from the input unless '-s' is given.

Every flag can also be set with a BOXTABLE_<FLAG> environment variable, for
example BOXTABLE_BORDERS=x.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError(fmt.Errorf("accepts at most 1 file, received %d", len(args)))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return checkEnvironmentVariables(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}
			return run(params.config(cmd), path, in, out, newLogger(errOut, params.logLevel.l))
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	addFlags(cmd.Flags(), &params)
	return cmd
}

func run(cfg boxtable.Config, path string, in io.Reader, out io.Writer, logger *logrus.Logger) error {
	lines, err := loadLines(path, in)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"input": path,
		"lines": len(lines),
	}).Debug("Loaded input.")

	if cfg.Reverse && cfg.DetectStyle {
		cfg.Style = boxtable.DetectStyle(lines)
		cfg.DetectStyle = false
		logger.WithField("style", cfg.Style.String()).Debug("Detected table style.")
	}

	fields := logrus.Fields{
		"delimiter": string(cfg.Delimiter),
		"borders":   cfg.Interval.String(),
		"style":     cfg.Style.String(),
		"transpose": cfg.Transpose,
		"reverse":   cfg.Reverse,
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		fields["rows"], fields["columns"] = tableShape(cfg, lines)
	}
	logger.WithFields(fields).Debug("Rendering.")

	return boxtable.Write(out, cfg, lines)
}

// tableShape returns the row and column count of the table read from lines.
// Parse errors count as an empty table; [boxtable.Write] reports them.
func tableShape(cfg boxtable.Config, lines []string) (rows, cols int) {
	var t boxtable.Table
	var err error
	if cfg.Reverse {
		t, err = boxtable.ExtractRows(lines, cfg.Style)
	} else {
		t, err = boxtable.ParseRows(lines, cfg.Delimiter)
	}
	if err != nil {
		return 0, 0
	}
	for _, row := range t {
		cols = max(cols, len(row))
	}
	return len(t), cols
}

// Run executes the command with args and returns the process exit status.
// Errors are reported on errOut.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil args.
		args = []string{}
	}
	cmd := NewCommand(in, out, errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return ExitCode(err)
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}
