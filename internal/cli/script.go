package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/packing/internal/model"
	"github.com/Makepad-fr/packing/internal/store"
	"github.com/Makepad-fr/packing/internal/ui"
)

var errUsage = errors.New("usage")

// Interpreter executes list commands against a store, one line at a time.
// It is the non-interactive presentation layer: positions on screen are
// resolved to item ids here, the store only ever sees ids.
type Interpreter struct {
	store  *store.Store
	out    io.Writer
	group  bool
	log    *zap.Logger
	listed bool
}

func NewInterpreter(s *store.Store, out io.Writer, group bool, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{store: s, out: out, group: group, log: log}
}

// Listed reports whether any ls command ran.
func (in *Interpreter) Listed() bool { return in.listed }

// Execute runs every line of r. Bad lines are reported to errOut and
// skipped; the returned code is 2 if any line was bad, else 0.
func (in *Interpreter) Execute(r io.Reader, errOut io.Writer) (int, error) {
	code := 0
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := in.Exec(sc.Text()); err != nil {
			ui.Fail(errOut, fmt.Sprintf("line %d: %v", n, err))
			code = 2
		}
	}
	if err := sc.Err(); err != nil {
		return 1, err
	}
	return code, nil
}

// Exec runs a single command line. Blank lines and comments are ignored.
func (in *Interpreter) Exec(line string) error {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, a := fields[0], fields[1:]
	in.log.Debug("exec", zap.String("cmd", cmd), zap.Strings("args", a))

	switch cmd {
	case "add":
		name, qty, err := parseNameQty("add", a)
		if err != nil {
			return err
		}
		in.store.Add(name, qty)
		return nil

	case "toggle", "rm":
		if len(a) != 1 {
			return fmt.Errorf("%w: %s <index>", errUsage, cmd)
		}
		it, err := in.resolve(a[0])
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		if cmd == "toggle" {
			in.store.Toggle(it.ID)
		} else {
			in.store.Remove(it.ID)
		}
		return nil

	case "edit":
		if len(a) < 2 {
			return fmt.Errorf("%w: edit <index> [-q N] <name...>", errUsage)
		}
		it, err := in.resolve(a[0])
		if err != nil {
			return fmt.Errorf("edit: %w", err)
		}
		name, qty, err := parseNameQty("edit", a[1:])
		if err != nil {
			return err
		}
		in.store.Edit(it.ID, name, qty)
		return nil

	case "clear":
		in.store.Clear()
		return nil

	case "ls":
		in.List()
		return nil

	case "stats":
		in.Stats()
		return nil
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

// parseNameQty reads "[-q N] <name...>". Bad quantities are coerced to 1.
func parseNameQty(cmd string, args []string) (string, int, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	q := fs.String("q", "1", "quantity")
	if err := fs.Parse(args); err != nil {
		return "", 0, fmt.Errorf("%s: %w", cmd, err)
	}
	name := strings.Join(fs.Args(), " ")
	if name == "" {
		return "", 0, fmt.Errorf("%w: %s [-q N] <name...>", errUsage, cmd)
	}
	return name, model.ParseQuantity(*q), nil
}

// resolve maps a 1-based position in the current snapshot to its item.
func (in *Interpreter) resolve(arg string) (model.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Item{}, fmt.Errorf("not a number: %s", arg)
	}
	c := in.store.Snapshot()
	it, ok := c.At(n - 1)
	if !ok {
		return model.Item{}, fmt.Errorf("index out of range: have %d, got %d", c.Len(), n)
	}
	return it, nil
}

// List prints the current snapshot in a themed panel.
func (in *Interpreter) List() {
	in.listed = true
	c := in.store.Snapshot()
	t := ui.Current()

	packed, total := store.PackedCount(c), store.Total(c)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Packing List"),
		ui.C(t.Success, "✔"), packed,
		ui.C(t.Pending, "•"), total-packed,
		ui.C(t.Accent, "Total"), total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, "Ready for your trip?"))
	lines = append(lines, ui.C(t.Accent, ui.ProgressBar(store.Fraction(c), store.PercentPacked(c), 28)))
	lines = append(lines, fmt.Sprintf("%d/%d  %s", packed, total, store.Status(c)))
	lines = append(lines, "")
	if in.group {
		lines = append(lines, groupLines(c)...)
	} else {
		lines = append(lines, flatLines(c, func(model.Item) bool { return true })...)
	}
	ui.Panel(in.out, lines)
}

// Stats prints the progress figures, including the ring geometry.
func (in *Interpreter) Stats() {
	c := in.store.Snapshot()
	p := store.Fraction(c)
	r := store.DefaultRing
	fmt.Fprintf(in.out, "packed %d/%d (%.1f%%) %s\n",
		store.PackedCount(c), store.Total(c), store.PercentPacked(c), store.Status(c))
	fmt.Fprintf(in.out, "ring r=%g circumference=%.2f filled=%.2f offset=%.2f\n",
		r.Radius, r.Circumference(), r.Filled(p), r.DashOffset(p))
}

// flatLines renders the items accepted by keep, numbered by their
// position in the whole list so the numbers can be fed back to commands.
func flatLines(c store.Collection, keep func(model.Item) bool) []string {
	t := ui.Current()
	var out []string
	for i, it := range c.Items() {
		if !keep(it) {
			continue
		}
		idx := fmt.Sprintf("%2d.", i+1)
		box, color := t.BoxUnpacked, t.Muted
		if it.Packed {
			box, color = t.BoxPacked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			ui.C(t.Muted, idx), ui.C(color, box), ui.Truncate(it.Name, 60), ui.C(t.Accent, fmt.Sprintf("×%d", it.Quantity))))
	}
	if len(out) == 0 {
		return []string{ui.C(t.Muted, "(none)")}
	}
	return out
}

func groupLines(c store.Collection) []string {
	t := ui.Current()
	var lines []string
	lines = append(lines, ui.C(t.Pending, "To pack"))
	lines = append(lines, flatLines(c, func(it model.Item) bool { return !it.Packed })...)
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Success, "Packed"))
	lines = append(lines, flatLines(c, func(it model.Item) bool { return it.Packed })...)
	return lines
}
