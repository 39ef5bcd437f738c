package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/neurondoctrine/internal/config"
	"github.com/jask/neurondoctrine/internal/content"
	"github.com/jask/neurondoctrine/internal/logging"
	"github.com/jask/neurondoctrine/internal/tui"
)

type options struct {
	configPath string
	print      bool
	width      int
	section    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "neurondoctrine",
		Short: "The Neuron Doctrine: a historical perspective",
		Long: `neurondoctrine shows the debate between Golgi's Reticular Theory and
Cajal's Neuron Doctrine, and the principles that came out of it.

Run without flags for a scrollable view, or with --print to write the
page to stdout.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/neurondoctrine/config.toml)")
	cmd.Flags().BoolVar(&opts.print, "print", false, "render the page once to stdout and exit")
	cmd.Flags().IntVar(&opts.width, "width", 0, "page width for --print (default ui.max_width)")
	cmd.Flags().StringVar(&opts.section, "section", "", "with --print, render only one of: header, debate, verdict, principles")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.Bool("print", opts.print),
		zap.Int("max_width", cfg.UI.MaxWidth),
		zap.String("markdown_style", cfg.UI.MarkdownStyle),
	)

	if opts.print {
		return printPage(cmd.OutOrStdout(), cfg, opts, logger)
	}
	if opts.section != "" {
		return fmt.Errorf("--section requires --print")
	}

	progOpts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(tui.New(cfg.UI, logger), progOpts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("exit")
	return nil
}

func printPage(w io.Writer, cfg config.Config, opts *options, logger *zap.Logger) error {
	width := opts.width
	if width <= 0 {
		width = cfg.UI.MaxWidth
	}
	screen := tui.NewScreen(content.Exhibit(), cfg.UI.MinCardWidth)
	format := tui.NewMarkdownFormatter(cfg.UI.MarkdownStyle, logger)

	if opts.section == "" {
		_, err := fmt.Fprintln(w, screen.Render(width, format))
		return err
	}
	out, err := screen.RenderSection(opts.section, width, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
