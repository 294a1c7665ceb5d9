package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/floorboard/internal/app"
	"github.com/five82/floorboard/internal/config"
	"github.com/five82/floorboard/internal/logtail"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(app.Run, stdinIsTerminal, isatty.IsTerminal(os.Stdout.Fd()))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "floorboard: %v\n", err)
		return 1
	}
	return 0
}

var errNotInteractive = errors.New("stdin is not a terminal; the dashboard needs an interactive session")

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

type runFunc func(context.Context, app.Options) error

func newRootCmd(runApp runFunc, interactive func() bool, color bool) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "floorboard",
		Short:         "Shop-floor MES dashboard for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !interactive() {
				return errNotInteractive
			}
			return runApp(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/floorboard/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/floorboard/prefs.toml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "diagnostic log level: debug, info, warn or error")

	root.AddCommand(newLogsCmd(&opts, color))
	return root
}

func newLogsCmd(opts *app.Options, color bool) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the diagnostic log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			entries, err := logtail.ReadEntries(cfg.LogPath(), lines)
			if err != nil {
				return fmt.Errorf("read log: %w", err)
			}
			return printEntries(cmd.OutOrStdout(), entries, color)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to print (0 for all)")
	return cmd
}

func printEntries(w io.Writer, entries []logtail.Entry, color bool) error {
	for _, e := range entries {
		line := logtail.Format(e)
		if color {
			line = logtail.Colorize(e)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
