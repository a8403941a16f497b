// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the state shared by the command and Main.
type app struct {
	cfg     Config
	lang    string
	verbose bool

	stdout io.Writer
	log    zerolog.Logger
}

// newLogger returns a plain-text console logger on w without timestamps.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(cw).Level(level)
}

// NewCommand builds the root command. Diagnostics go to stderr, the timing
// report to stdout. Errors are returned from Execute, never printed by cobra.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).command(stderr)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, log: newLogger(stderr, zerolog.InfoLevel)}
}

func (a *app) command(stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matmul [flags] <matrixA_path> <matrixB_path> <output_path>",
		Short: "Multiply two matrices sequentially and in parallel and compare the timings",
		Long: "matmul reads two whitespace-delimited matrices, multiplies them with a\n" +
			"sequential and a parallel kernel, writes the parallel product with two\n" +
			"decimals per value and prints the wall-clock time of each kernel.",
		Args:          exactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.run,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	a.bindFlags(cmd.Flags())

	return cmd
}

func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&a.cfg.Workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.BoolVar(&a.cfg.Verify, "verify", false, "cross-check both products against gonum before writing")
	fs.StringVar(&a.lang, "lang", DefaultLang, "report language (tr, en)")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
}

// exactArgs is cobra.ExactArgs with the error classified as ErrUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: accepts %d arg(s), received %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

func (a *app) run(_ *cobra.Command, args []string) error {
	if a.verbose {
		a.log = a.log.Level(zerolog.DebugLevel)
	}
	if a.cfg.Workers < 0 {
		return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, a.cfg.Workers)
	}
	tag, err := parseLang(a.lang)
	if err != nil {
		return err
	}
	a.cfg.PathA, a.cfg.PathB, a.cfg.PathOut = args[0], args[1], args[2]

	logHost(a.log)

	rep, err := Run(a.cfg, a.log)
	if err != nil {
		return err
	}

	return rep.Print(a.stdout, tag)
}

// Main runs the command with args (without the program name) and returns
// the process exit status. It is the only place that turns errors into
// diagnostics and exit codes.
func Main(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.command(stderr)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	kind := Classify(err)
	a.log.Error().Str("kind", kind.String()).Err(err).Msg("matmul failed")
	if kind == KindUsage {
		fmt.Fprint(stderr, cmd.UsageString())
	}

	return ExitCode(err)
}
