package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/config"
	"github.com/linegrep/linegrep/logging"
	"github.com/linegrep/linegrep/pattern"
	"github.com/linegrep/linegrep/regexp"
	"github.com/linegrep/linegrep/report"
	"github.com/linegrep/linegrep/scan"
	"github.com/linegrep/linegrep/sources/files"
	"github.com/linegrep/linegrep/version"
)

const configDescription = `config file path
order of precedence:
1. --config
2. env var LINEGREP_CONFIG
3. env var LINEGREP_CONFIG_TOML with the file content
If none of the three options are used, then linegrep will use the default config`

// command holds the flag values and streams of one invocation.
type command struct {
	opts     linegrep.Options
	patterns patternArgs

	engine     string
	configPath string
	logLevel   string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	status linegrep.Status
}

func newRootCommand(c *command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                   "linegrep [OPTIONS] PATTERN [FILE...]",
		Short:                 "Search sources line by line for a set of regular expressions",
		Version:               version.Version,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.run(cmd, args)
			c.status = status
			return err
		},
	}
	rootCmd.SetIn(c.stdin)
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", linegrep.ErrUsage, err)
	})

	flags := rootCmd.Flags()
	flags.VarP(c.patterns.flag(patternLiteral), "regexp", "e", "use PATTERN for matching (repeatable)")
	flags.VarP(c.patterns.flag(patternFile), "file", "f", "read patterns from FILE, one per line (repeatable)")
	flags.BoolVarP(&c.opts.IgnoreCase, "ignore-case", "i", false, "ignore case distinctions")
	flags.BoolVarP(&c.opts.InvertMatch, "invert-match", "v", false, "select non-matching lines")
	flags.BoolVarP(&c.opts.CountOnly, "count", "c", false, "print only a count of selected lines per source")
	flags.BoolVarP(&c.opts.ListFilesOnly, "files-with-matches", "l", false, "print only names of sources with selected lines")
	flags.BoolVarP(&c.opts.ShowLineNumber, "line-number", "n", false, "prefix output with line numbers")
	flags.BoolVarP(&c.opts.SuppressFilename, "no-filename", "h", false, "suppress source name prefixes")
	flags.BoolVarP(&c.opts.SuppressErrors, "no-messages", "s", false, "suppress error messages about unreadable sources")
	flags.BoolVarP(&c.opts.OnlyMatching, "only-matching", "o", false, "print only the matched parts of lines")
	flags.StringVar(&c.engine, "engine", "", "regex engine (stdlib, re2)")
	flags.StringVar(&c.configPath, "config", "", configDescription)
	flags.StringVar(&c.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal)")
	// -h belongs to --no-filename, so help is long form only.
	flags.Bool("help", false, "help for linegrep")

	return rootCmd
}

// Execute runs linegrep on the process arguments and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes one linegrep invocation and returns its exit code: 0 when a
// line was selected, 1 when none was and 2 on trouble.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &command{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		// --help and --version succeed without scanning.
		status: linegrep.StatusMatch,
	}
	logging.Logger = logging.New(stderr, zerolog.InfoLevel)

	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	rootCmd := newRootCommand(c)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		c.report(rootCmd, err)
		return linegrep.StatusTrouble.Code()
	}
	return c.status.Code()
}

func (c *command) run(cmd *cobra.Command, args []string) (linegrep.Status, error) {
	cfg, err := config.Resolve(c.configPath, os.Getenv)
	if err != nil {
		return linegrep.StatusTrouble, err
	}
	if err := c.initLog(cfg); err != nil {
		return linegrep.StatusTrouble, err
	}
	if cfg.Outdated(version.Version) {
		logging.Warn().
			Str("min_version", cfg.MinVersion).
			Str("version", version.Version).
			Msgf("config %s was written for a newer linegrep", cfg.Origin)
	}

	set, paths, err := c.patternSet(args)
	if err != nil {
		return linegrep.StatusTrouble, err
	}
	expr, err := set.Combine()
	if err != nil {
		return linegrep.StatusTrouble, err
	}

	engineName := cfg.Engine
	if cmd.Flags().Changed("engine") {
		engineName = c.engine
	}
	engine, err := regexp.ParseEngine(engineName)
	if err != nil {
		return linegrep.StatusTrouble, err
	}
	logging.Debug().Msgf("using %s regex engine", engine)

	re, err := engine.Compile(expr, c.opts.IgnoreCase)
	if err != nil {
		return linegrep.StatusTrouble, err
	}

	literals, _ := set.Literals()
	printer := report.NewPrinter(c.stdout)
	printer.LineBuffered = isTerminal(c.stdout)

	pipeline := scan.NewPipeline(c.opts, scan.NewEvaluator(re, c.opts, literals), printer)
	status, err := pipeline.Run(cmd.Context(), &files.Files{Paths: paths, Stdin: c.stdin})
	if err != nil {
		return status, fmt.Errorf("could not write output: %w", err)
	}
	return status, nil
}

// initLog applies the log level of the config, overridden by --log-level.
func (c *command) initLog(cfg config.Config) error {
	ll := cfg.LogLevel
	if c.logLevel != "" {
		ll = c.logLevel
	}
	level, err := logging.ParseLevel(ll)
	if err != nil {
		return fmt.Errorf("%w: %w", linegrep.ErrUsage, err)
	}
	logging.Logger = logging.Logger.Level(level)
	return nil
}

// patternSet builds the pattern set from -e and -f in command-line order.
// Without either, the first positional argument is the pattern. The
// remaining positional arguments are returned as source paths.
func (c *command) patternSet(args []string) (*pattern.Set, []string, error) {
	set := pattern.New()
	if c.patterns.empty() {
		if len(args) == 0 {
			return nil, nil, fmt.Errorf("%w: no pattern given", linegrep.ErrUsage)
		}
		set.Push(args[0])
		return set, args[1:], nil
	}

	for _, a := range c.patterns.args {
		switch a.kind {
		case patternLiteral:
			set.Push(a.value)
		case patternFile:
			if err := set.LoadFile(a.value); err != nil {
				return nil, nil, err
			}
		}
	}
	return set, args, nil
}

// report writes the diagnostic of a fatal error to stderr.
func (c *command) report(cmd *cobra.Command, err error) {
	switch {
	case errors.Is(err, linegrep.ErrUsage):
		logging.Error().Msg(err.Error())
		_, _ = fmt.Fprintf(c.stderr, "Usage: %s\nTry 'linegrep --help' for more information.\n", cmd.UseLine())
	case errors.Is(err, linegrep.ErrPatternFile):
		if !c.opts.SuppressErrors {
			logging.Error().Msg(err.Error())
		}
	default:
		logging.Error().Msg(err.Error())
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
