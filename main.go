/*
Railroad demo: builds a track from waypoints and runs a small train on it
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/anima/engine"
	"github.com/spaghettifunk/anima/engine/config"
	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/platform"
	"github.com/spaghettifunk/anima/engine/renderer/headless"
	"github.com/spaghettifunk/anima/testbed"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	headless   bool
	ticks      uint64
	watch      bool
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "anima",
		Short:         "Run the railroad scene",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "scene file (.toml, .yaml or .yml)")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "run without a window")
	cmd.Flags().Uint64Var(&opts.ticks, "ticks", 600, "number of ticks to run headless, 0 runs forever")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild the scene when the config file changes")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "overrides the log level of the config")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else if opts.watch {
		return fmt.Errorf("%w: --watch needs --config", core.ErrInvalidArgument)
	}
	tb, err := testbed.NewTestGame(cfg, opts.configPath, opts.watch, testbed.WithLogLevel(opts.logLevel))
	if err != nil {
		return err
	}

	p := platform.New()
	if opts.headless {
		p = platform.NewHeadless(opts.ticks)
	}

	e, err := engine.New(tb.Game, headless.New(), p)
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogError(err.Error())
		}
	}()

	if err := e.Initialize(); err != nil {
		return err
	}

	// stop the loop on SIGTERM and friends
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	go func() {
		<-ctx.Done()
		e.Stop()
	}()

	return e.Run()
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}
