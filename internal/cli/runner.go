package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/packing/internal/store"
	"github.com/Makepad-fr/packing/internal/store/jsonstore"
	"github.com/Makepad-fr/packing/internal/tui"
	"github.com/Makepad-fr/packing/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // ls output grouped by unpacked/packed
	Dump  bool // print the final list as JSON on exit

	In       io.Reader
	Out, Err io.Writer
	Log      *zap.Logger

	// Interactive runs the TUI. Defaults to tui.Run on the alternate screen.
	Interactive func(*store.Store, *zap.Logger) (store.Collection, error)
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Interactive == nil {
		o.Interactive = func(s *store.Store, log *zap.Logger) (store.Collection, error) {
			return tui.Run(s, log, tea.WithAltScreen())
		}
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, s *store.Store, opt Options) int {
	opt.defaults()
	cmd, a := "tui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	var code int
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "tui":
		if len(a) != 0 {
			ui.Fail(opt.Err, "usage: packing tui")
			return 2
		}
		opt.Log.Info("tui start", zap.Int("total", store.Total(s.Snapshot())))
		if _, err := opt.Interactive(s, opt.Log); err != nil {
			ui.Fail(opt.Err, "tui: "+err.Error())
			return 1
		}

	case "run":
		if len(a) > 1 {
			ui.Fail(opt.Err, "usage: packing run [file|-]")
			return 2
		}
		src := "-"
		if len(a) == 1 {
			src = a[0]
		}
		code = runScript(src, s, opt)
		if code == 1 {
			return code
		}

	default:
		ui.Fail(opt.Err, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Err)
		PrintHelp(opt.Err)
		return 2
	}

	if opt.Dump {
		if err := jsonstore.Write(opt.Out, s.Snapshot()); err != nil {
			ui.Fail(opt.Err, "dump: "+err.Error())
			return 1
		}
	}
	return code
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `packing - a tiny packing list

Usage:
  packing [flags] [subcommand]

Subcommands:
  tui                Interactive list (default)
  run [file|-]       Run a script of list commands (stdin when omitted)
  help               Show this help

Script commands (one per line, # starts a comment):
  add [-q N] <name...>          Add an item (quantity defaults to 1)
  toggle <index>                Pack/unpack the item at 1-based index
  rm <index>                    Remove the item at 1-based index
  edit <index> [-q N] <name...> Rename an item and set its quantity
  clear                         Remove every item
  ls                            Show the list
  stats                         Show progress figures

Flags:
  -theme classic|neon|mono   -seed none|demo   -seed-file path
  -group   -dump   -log path   -log-level level   -color   -no-color

Examples:
  packing -seed demo
  printf 'add passport\nadd -q 3 t-shirt\ntoggle 1\nls\n' | packing run
`)
}

func runScript(src string, s *store.Store, opt Options) int {
	r := opt.In
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			ui.Fail(opt.Err, "open script: "+err.Error())
			return 1
		}
		defer f.Close()
		r = f
	}
	in := NewInterpreter(s, opt.Out, opt.Group, opt.Log)
	code, err := in.Execute(r, opt.Err)
	if err != nil {
		ui.Fail(opt.Err, "read script: "+err.Error())
		return 1
	}
	if !in.Listed() && !opt.Dump {
		in.List()
	}
	return code
}
