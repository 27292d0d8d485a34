package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoview/internal/backend/placeholder"
	"github.com/idilsaglam/todoview/internal/config"
	"github.com/idilsaglam/todoview/internal/exitcode"
	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/logging"
	"github.com/idilsaglam/todoview/internal/service"
	"github.com/idilsaglam/todoview/internal/store/jsonstore"
	"github.com/idilsaglam/todoview/internal/tui"
	"github.com/idilsaglam/todoview/internal/ui"
)

// Options tune output behavior and let tests swap collaborators.
type Options struct {
	Group bool // default for `ls --group`

	Stdout io.Writer
	Stderr io.Writer

	// NewService builds the todo source from resolved config. Defaults to HTTP,
	// or the JSON file backend when --file is set.
	NewService func(cfg *config.Config) (service.Service, error)

	// RunTUI runs the interactive screens. Defaults to tui.Run.
	RunTUI func(ctx context.Context, svc service.Service) error

	// ConfigDirs overrides where .todoview.yaml is searched.
	ConfigDirs []string
}

// app is the state shared by every command for one invocation.
type app struct {
	opt    Options
	cfg    *config.Config
	svc    service.Service
	closer io.Closer
}

// usageError marks bad arguments so they exit with exitcode.Usage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// Run dispatches subcommands and returns an exit code
// (0 ok, 1 failure, 2 usage, 3 backend).
func Run(ctx context.Context, args []string, opt Options) int {
	opt = withDefaults(opt)
	a := &app{opt: opt}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if a.closer != nil {
		a.closer.Close()
	}
	if err != nil {
		ui.Fail(opt.Stderr, fetch.Message(err))
		return exitCode(err)
	}
	return exitcode.Success
}

func withDefaults(opt Options) Options {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.NewService == nil {
		opt.NewService = defaultService
	}
	if opt.RunTUI == nil {
		opt.RunTUI = func(ctx context.Context, svc service.Service) error {
			return tui.Run(ctx, svc)
		}
	}
	return opt
}

func defaultService(cfg *config.Config) (service.Service, error) {
	if cfg.File != "" {
		return jsonstore.New(cfg.File), nil
	}
	return placeholder.New(cfg.BaseURL, placeholder.WithTimeout(cfg.Timeout)), nil
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return exitcode.Success
	case errors.As(err, &ue), errors.Is(err, config.ErrInvalid):
		return exitcode.Usage
	case service.IsBackend(err):
		return exitcode.BackendError
	default:
		return exitcode.Failure
	}
}

// newRootCmd builds the command tree. No subcommand starts the TUI.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todoview",
		Short:         "Browse todos from a JSONPlaceholder-style API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list/detail screens
  todoview

  # Print only open todos
  todoview ls --filter open

  # Show one todo
  todoview show 2
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.opt.RunTUI(cmd.Context(), a.svc)
		},
	}
	cmd.SetOut(a.opt.Stdout)
	cmd.SetErr(a.opt.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	config.BindFlags(cmd.PersistentFlags())

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves config, theme, logging and the todo source before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), a.opt.ConfigDirs...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := ui.SetTheme(cfg.Theme); err != nil {
		return usageError{err}
	}
	if !strings.EqualFold(cfg.Theme, "mono") {
		ui.SetColorForcing(false, cfg.NoColor)
	}

	closer, err := logging.Setup(cfg.Debug, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.closer = closer

	svc, err := a.opt.NewService(cfg)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	a.svc = svc
	return nil
}
