package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akyairhashvil/tankview/internal/config"
	"github.com/akyairhashvil/tankview/internal/sim"
	"github.com/akyairhashvil/tankview/internal/tui"
	"github.com/akyairhashvil/tankview/internal/util"
	"github.com/akyairhashvil/tankview/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type options struct {
	configPath string
	pdfPath    string
	once       bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(config.NewViper())
}

// buildRootCmd wires the flags into v; --theme overrides ui.theme.
func buildRootCmd(v *viper.Viper) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Terminal dashboard for tank levels and valve pressures",
		Long: `tankview shows three valve pressure charts and three tank level gauges
fed by a built-in simulator. Keys 1-3 open and close valves.`,
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $TANKVIEW_CONFIG or ~/.config/tankview/config.toml)")
	flags.String("theme", "", "color theme: "+strings.Join(widget.ThemeNames(), ", "))
	flags.StringVar(&opts.pdfPath, "pdf", "", "write one PDF snapshot to this path and exit")
	flags.BoolVar(&opts.once, "once", false, "print one frame and exit")
	util.MustSucceed("bind --theme", v.BindPFlag("ui.theme", flags.Lookup("theme")))

	return cmd
}

func capacities(cfg config.Config) sim.Capacities {
	return sim.Capacities{
		Principal:   cfg.Tanks.Principal,
		Secundario1: cfg.Tanks.Secundario1,
		Secundario2: cfg.Tanks.Secundario2,
	}
}

func run(v *viper.Viper, opts options, out io.Writer) error {
	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return err
	}
	sys := sim.NewSeeded(capacities(cfg))

	fd, tty := terminalFD(out)
	if opts.pdfPath != "" || opts.once || !tty {
		return snapshot(cfg, sys, opts, out, fd, tty)
	}

	logFile, err := util.OpenLog(cfg.Log.Path, config.AppName+" ")
	if err != nil {
		return err
	}
	defer logFile.Close()

	p := tea.NewProgram(tui.NewModel(cfg, sys), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// snapshot fills one history window and prints or exports a single frame.
func snapshot(cfg config.Config, sys *sim.System, opts options, out io.Writer, fd int, tty bool) error {
	hist := tui.NewHistory(cfg.UI.History)
	start := time.Now().Add(-time.Duration(cfg.UI.History) * cfg.UI.Refresh)
	var snap sim.Snapshot
	for i := 0; i < cfg.UI.History; i++ {
		snap = sys.Step(start.Add(time.Duration(i+1) * cfg.UI.Refresh))
		hist.Push(snap)
	}
	frame := tui.BuildFrame(cfg, widget.ResolveTheme(cfg.UI.Theme), hist, snap)

	if opts.pdfPath != "" {
		if err := tui.ExportReport(opts.pdfPath, frame); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "PDF Report generated: %s\n", opts.pdfPath)
		return err
	}

	width := 0
	if tty {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	_, err := fmt.Fprintf(out, "%s\n%s\n", tui.RenderFrame(frame, width, widget.NewRenderCache()), tui.StatusLine(frame, frame.Theme))
	return err
}

func terminalFD(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return -1, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
