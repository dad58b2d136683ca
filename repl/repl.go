package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/gad-lang/funcwrap"
)

const (
	prompt = ">>> "
	banner = "funcwrap %s. Type :sigs for signatures, :quit to exit."
)

// Options configures Run.
type Options struct {
	// HistoryPath is read on start and written on exit when set.
	HistoryPath string
	Out         io.Writer
	Err         io.Writer
}

// Run reads lines until EOF, :quit or ctx is done and prints the value of
// each evaluated line.
func (e *Evaluator) Run(ctx context.Context, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(e.complete)

	if opts.HistoryPath != "" {
		if f, err := os.Open(opts.HistoryPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(opts.HistoryPath)
			if err != nil {
				funcwrap.Logger().Warn("cannot write history", zap.Error(err))
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	if e.Module != nil {
		fmt.Fprintf(opts.Out, banner+"\n", e.Module.Name)
	}
	for ctx.Err() == nil {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(opts.Out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if quit := e.Exec(line, opts.Out, opts.Err); quit {
			return nil
		}
	}
	return ctx.Err()
}

// Exec evaluates a line, or runs it if it is a meta command, and prints the
// result. It reports whether the session should end.
func (e *Evaluator) Exec(line string, out, errOut io.Writer) (quit bool) {
	if strings.HasPrefix(line, ":") {
		switch strings.ToLower(line) {
		case ":quit", ":q":
			return true
		case ":sigs":
			for _, m := range e.Modules() {
				fmt.Fprintln(out, m.Tree())
			}
		default:
			fmt.Fprintln(errOut, "unknown command. Type :sigs or :quit.")
		}
		return false
	}

	v, err := e.Eval(line)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	fmt.Fprintln(out, Format(v))
	return false
}

// Modules returns the modules in name order.
func (e *Evaluator) Modules() []*funcwrap.Module {
	names := make([]string, 0, len(e.modules))
	for name := range e.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	mods := make([]*funcwrap.Module, len(names))
	for i, name := range names {
		mods[i] = e.modules[name]
	}
	return mods
}

func (e *Evaluator) complete(line string) (c []string) {
	var names []string
	if e.Module != nil {
		names = e.Module.Names()
	}
	for name := range e.modules {
		names = append(names, name)
	}
	for name := range e.vars {
		names = append(names, name)
	}
	for name := range e.builtins {
		names = append(names, name)
	}
	for _, name := range names {
		if strings.HasPrefix(name, line) {
			c = append(c, name)
		}
	}
	return
}
