package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	pb "github.com/KevinKickass/BlinkenCore/api/proto"
	"github.com/KevinKickass/BlinkenCore/internal/api/rpc"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/alecthomas/kong"
	"github.com/peterh/liner"
)

type commands struct {
	Panels panelsCmd `cmd:"" help:"List panels and their controls."`
	Get    getCmd    `cmd:"" help:"Read the input controls of a panel."`
	Set    setCmd    `cmd:"" help:"Write the output controls of a panel."`
	State  stateCmd  `cmd:"" help:"Get or set the boards state of a panel."`
	Info   infoCmd   `cmd:"" help:"Print the server info."`
}

type cli struct {
	Server  string        `short:"H" default:"localhost:50051" env:"BLINKEN_SERVER" help:"Server gRPC address."`
	Timeout time.Duration `default:"5s" help:"Timeout of a single call."`

	Commands commands `embed:""`
	Shell    shellCmd `cmd:"" help:"Interactive shell."`
}

// app is bound to every command.
type app struct {
	client  *rpc.Client
	timeout time.Duration
	out     io.Writer
}

func (a *app) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

// panel resolves a panel handle or name.
func (a *app) panel(ctx context.Context, ref string) (int32, error) {
	if h, err := strconv.ParseInt(ref, 10, 32); err == nil {
		return int32(h), nil
	}
	return a.client.FindPanel(ctx, ref)
}

func formatValue(v uint64, radix int32) string {
	switch radix {
	case 8:
		return "0" + strconv.FormatUint(v, 8)
	case 16:
		return "0x" + strconv.FormatUint(v, 16)
	default:
		return strconv.FormatUint(v, 10)
	}
}

// parseValue accepts decimal, 0x hex and 0 or 0o octal numbers.
func parseValue(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

type panelsCmd struct{}

func (c *panelsCmd) Run(a *app) error {
	ctx, cancel := a.context()
	defer cancel()

	list, err := a.client.GetPanelList(ctx)
	if err != nil {
		return err
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "%d %s", p.Handle, p.Name)
		if p.Info != "" {
			fmt.Fprintf(a.out, " - %s", p.Info)
		}
		fmt.Fprintf(a.out, " (%d inputs, %d outputs)\n", p.InputsCount, p.OutputsCount)
		for _, ctl := range p.Controls {
			dir := "out"
			if ctl.GetDirection() == pb.Direction_DIRECTION_INPUT {
				dir = "in"
			}
			fmt.Fprintf(a.out, "  %d %-24s %-3s %2d bits radix %d\n", ctl.Handle, ctl.Name, dir, ctl.ValueBitlen, ctl.Radix)
		}
	}
	return nil
}

type getCmd struct {
	Panel string `arg:"" help:"Panel name or handle."`
}

func (c *getCmd) Run(a *app) error {
	ctx, cancel := a.context()
	defer cancel()

	h, err := a.panel(ctx, c.Panel)
	if err != nil {
		return err
	}
	p, err := a.client.GetPanel(ctx, h)
	if err != nil {
		return err
	}
	values, err := a.client.GetControlValues(ctx, h)
	if err != nil {
		return err
	}

	i := 0
	for _, ctl := range p.Controls {
		if ctl.GetDirection() != pb.Direction_DIRECTION_INPUT || i >= len(values) {
			continue
		}
		fmt.Fprintf(a.out, "%s = %s\n", ctl.Name, formatValue(values[i], ctl.Radix))
		i++
	}
	return nil
}

type setCmd struct {
	Panel  string   `arg:"" help:"Panel name or handle."`
	Values []string `arg:"" help:"One value per output control, in control order."`
	Force  bool     `short:"f" help:"Rewrite all output registers."`
}

func (c *setCmd) Run(a *app) error {
	values := make([]uint64, len(c.Values))
	for i, s := range c.Values {
		v, err := parseValue(s)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", s, err)
		}
		values[i] = v
	}

	ctx, cancel := a.context()
	defer cancel()

	h, err := a.panel(ctx, c.Panel)
	if err != nil {
		return err
	}
	return a.client.SetControlValues(ctx, h, values, c.Force)
}

type stateCmd struct {
	Panel string `arg:"" help:"Panel name or handle."`
	State string `arg:"" optional:"" help:"New state: normal, off or test."`
}

func (c *stateCmd) Run(a *app) error {
	ctx, cancel := a.context()
	defer cancel()

	h, err := a.panel(ctx, c.Panel)
	if err != nil {
		return err
	}

	if c.State == "" {
		st, err := a.client.GetBoardsState(ctx, h)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, panels.BoardState(st))
		return nil
	}

	st, err := panels.ParseBoardState(c.State)
	if err != nil {
		return err
	}
	return a.client.SetBoardsState(ctx, h, pb.BoardState(st))
}

type infoCmd struct{}

func (c *infoCmd) Run(a *app) error {
	ctx, cancel := a.context()
	defer cancel()

	info, err := a.client.GetServerInfo(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, info)
	return nil
}

type shellCmd struct {
	Prompt string `default:"blinken> " help:"Shell prompt."`
}

func (c *shellCmd) Run(a *app) error {
	parser, err := newShellParser(a)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completer(a))

	for {
		input, err := line.Prompt(c.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !execLine(parser, a, input) {
			return nil
		}
	}
}

// newShellParser builds the parser for shell lines. It never exits the
// process, usage and parse errors go to the app output.
func newShellParser(a *app) (*kong.Kong, error) {
	var cmds commands
	return kong.New(&cmds,
		kong.Name("blinkenctl"),
		kong.Exit(func(int) {}),
		kong.Writers(a.out, a.out),
	)
}

// execLine runs one shell line. It returns false when the shell should end.
func execLine(parser *kong.Kong, a *app, input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "exit", "quit":
		return false
	}

	kctx, err := parser.Parse(fields)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return true
	}
	if err := kctx.Run(a); err != nil {
		fmt.Fprintln(a.out, "error:", err)
	}
	return true
}

// completer completes command names and, after a command, panel names.
func completer(a *app) liner.Completer {
	return func(line string) []string {
		fields := strings.Fields(line)
		words := []string{"panels", "get", "set", "state", "info", "exit"}
		prefix := ""

		trailing := strings.HasSuffix(line, " ")
		if len(fields) > 2 || (len(fields) == 2 && trailing) {
			return nil
		}

		if len(fields) > 1 || (len(fields) == 1 && trailing) {
			ctx, cancel := a.context()
			defer cancel()
			list, err := a.client.GetPanelList(ctx)
			if err != nil {
				return nil
			}
			words = words[:0]
			for _, p := range list {
				words = append(words, p.Name)
			}
			prefix = fields[0] + " "
		}

		last := ""
		if len(fields) > 0 && !trailing {
			last = fields[len(fields)-1]
		}
		var o []string
		for _, w := range words {
			if strings.HasPrefix(w, last) {
				o = append(o, prefix+w)
			}
		}
		return o
	}
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("blinkenctl"),
		kong.Description("Command line client of the Blinkenlight API server."),
		kong.UsageOnError(),
	)

	client, cc, err := rpc.Dial(args.Server)
	kctx.FatalIfErrorf(err)

	err = kctx.Run(&app{client: client, timeout: args.Timeout, out: os.Stdout})
	cc.Close()
	kctx.FatalIfErrorf(err)
}
