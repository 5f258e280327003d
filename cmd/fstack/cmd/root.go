package cmd

import (
	"fmt"
	"os"

	"github.com/corey/fstack/internal/adapters/ahocorasick"
	"github.com/corey/fstack/internal/adapters/yamltable"
	"github.com/corey/fstack/internal/app"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/ports"
	"github.com/corey/fstack/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// environment is what the commands read from the process. Tests replace it.
type environment struct {
	getenv func(string) string
	paths  *app.Paths
}

func processEnvironment() environment {
	return environment{getenv: os.Getenv, paths: app.DefaultPaths()}
}

// session is the state shared by all commands of one invocation, built in
// the root's PersistentPreRunE.
type session struct {
	env environment

	// persistent flags
	tablePath string
	color     string
	noColor   bool
	verbose   bool

	cfg       app.Config
	tableFrom string // file path, or "" for the built-in table
	logger    *zap.Logger
	app       *app.App
	useColor  bool
	render    *render.Renderer
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(processEnvironment()).Execute()
}

func newRootCmd(env environment) *cobra.Command {
	s := &session{env: env}
	q := &queryOptions{s: s}

	root := &cobra.Command{
		Use:   "fstack [type-or-function]",
		Short: "fstack — cognitive function stack lookup",
		Long: `Looks up the cognitive function stack of a type, finds the types whose
stack contains a function (or any substring of a stack) and reports which
slots each hit covers.

  fstack INFP                 stack of INFP
  fstack Fi                   types with Fi anywhere in their stack
  fstack -f Fi -s 1           types with Fi as their primary function
  fstack -m 'E?T?' -f Ni      ENTP, ENTJ, ESTP, ESTJ with Ni
  fstack -o INFP              opposite type (ESTJ)`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: s.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
		RunE:          q.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.tablePath, "table", "", "YAML table file (default: ./fstack.yaml, ~/.config/fstack/table.yaml, built-in)")
	pf.StringVar(&s.color, "color", app.ColorAuto, "Color output: auto, always, never")
	pf.BoolVar(&s.noColor, "no-color", false, "Suppress color output")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "Debug logging to stderr")

	f := root.Flags()
	f.StringVarP(&q.function, "function", "f", "", "Function or substring to search in the stacks (e.g. Fi, NiT)")
	f.IntVarP(&q.slot, "slot", "s", 0, "Only hits covering this slot: 1=Primary 2=Secondary 3=Tertiary 4=Inferior")
	f.StringVarP(&q.wildcard, "mbti", "m", "", `Type wildcard, "?" matches one letter (e.g. E?T?, ?N, EN?)`)
	f.StringVarP(&q.opposite, "opposite", "o", "", "Show the opposite of a type (e.g. INFP => ESTJ)")

	root.AddCommand(newTableCmd(s))
	root.AddCommand(newConfigCmd(s))
	root.AddCommand(newBrowseCmd(s))
	return root
}

// setup resolves configuration (env files, environment, flags), builds the
// logger and loads the table.
func (s *session) setup(cmd *cobra.Command, args []string) error {
	if err := app.LoadEnv(s.env.paths.EnvFiles()...); err != nil {
		return err
	}
	cfg := app.ConfigFromEnv(s.env.getenv)
	flags := cmd.Flags()
	if flags.Changed("table") {
		cfg.TablePath = s.tablePath
	}
	if flags.Changed("color") {
		cfg.Color = s.color
	}
	if s.verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	s.logger = logger

	s.tableFrom = cfg.TablePath
	if s.tableFrom == "" {
		s.tableFrom = s.env.paths.FindTable()
	}
	var src ports.TableSource = stack.ReferenceSource{}
	if s.tableFrom != "" {
		src = yamltable.Source{Path: s.tableFrom}
	}
	table, err := app.LoadTable(src, ahocorasick.NewElementScanner())
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	logger.Debug("table loaded",
		zap.String("source", s.tableSource()),
		zap.Int("types", table.Len()))

	s.app = app.New(table, logger)
	s.useColor = resolveColor(cmd.OutOrStdout(), cfg.Color, s.noColor)
	s.render = render.New(cmd.OutOrStdout(), s.useColor)
	return nil
}

// tableSource describes where the table came from.
func (s *session) tableSource() string {
	if s.tableFrom == "" {
		return "built-in"
	}
	return s.tableFrom
}
