package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/internal/config"
	"github.com/xiam/edn/internal/logging"
	"github.com/xiam/edn/internal/render"
	"github.com/xiam/edn/internal/style"
	"github.com/xiam/edn/parser"
)

const stdinName = "-"

// errReported marks errors that were already printed to the user.
var errReported = errors.New("error reported")

// app holds the state shared by the commands of a single invocation.
type app struct {
	cfgFile      string
	format       string
	maxDepth     int
	lineComments bool
	all          bool
	noColor      bool
	logLevel     string

	cfg    *config.Config
	theme  style.Theme
	logger *slog.Logger
}

// NewRootCmd builds the ednread command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ednread [file...]",
		Short: "Read EDN-like data and print its parse tree",
		Long: `ednread reads lists, vectors, maps, sets, scalars and tagged literals
from files or standard input and prints the resulting tree.

Output formats:
  debug  - <EdnInt 42> style rendering (default)
  edn    - text that reads back into the same tree
  tree   - indented node listing with line numbers
  yaml   - YAML document per form`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRead(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvConfig+")")
	flags.StringVarP(&a.format, "format", "f", "", "output format: debug, edn, tree or yaml")
	flags.IntVar(&a.maxDepth, "max-depth", 0, "maximum nesting depth, 0 for no limit")
	flags.BoolVar(&a.lineComments, "line-comments", false, "end the pending atom where a comment starts")
	flags.BoolVar(&a.noColor, "no-color", false, "disable styled output")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVarP(&a.all, "all", "a", false, "read every top-level form instead of the first one")

	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// setup loads the configuration and applies the flags on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("max-depth") {
		cfg.Reader.MaxDepth = a.maxDepth
	}
	if flags.Changed("line-comments") {
		cfg.Reader.LineComments = a.lineComments
	}
	if flags.Changed("all") {
		cfg.Reader.All = a.all
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		disabled := false
		cfg.Output.Color = &disabled
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.theme = style.New(cfg.ColorEnabled())
	a.logger = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func (a *app) runRead(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	failed := false
	for _, name := range args {
		if err := a.readSource(cmd, name); err != nil {
			if !errors.Is(err, errReported) {
				return err
			}
			failed = true
		}
	}
	if failed {
		return errReported
	}
	return nil
}

// readSource parses a single file, or standard input for "-", and renders
// the result.
func (a *app) readSource(cmd *cobra.Command, name string) error {
	logger := a.logger.With("parse_id", uuid.NewString(), "source", name)

	data, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	start := time.Now()
	nodes, err := a.parse(data)
	if err != nil {
		logger.Debug("parse failed", "error", err)
		a.reportParseError(cmd.ErrOrStderr(), err)
		return errReported
	}
	logger.Debug("parsed", "forms", len(nodes), "bytes", len(data), "duration", time.Since(start))

	return render.Render(cmd.OutOrStdout(), nodes, a.cfg.Output.Format)
}

func (a *app) parse(data []byte) ([]*ast.Node, error) {
	p := parser.New(data)
	p.SetOptions(a.cfg.ParserOptions())

	if a.cfg.Reader.All {
		return p.ParseAll()
	}
	node, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return []*ast.Node{node}, nil
}

func (a *app) reportParseError(w io.Writer, err error) {
	fmt.Fprintln(w, a.theme.Error("Error parsing: "+err.Error()))
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
