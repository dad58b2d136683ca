// Command funcwrap runs a REPL calling the native functions of the stdlib
// modules.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/gad-lang/funcwrap"
	"github.com/gad-lang/funcwrap/repl"
	"github.com/gad-lang/funcwrap/stdlib"
	"github.com/gad-lang/funcwrap/stdlib/fnexample"
)

const historyFile = ".funcwrap_history"

func main() {
	cmd := &cli.Command{
		Name:  "funcwrap",
		Usage: "Call native Go functions from script expressions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "history",
				Usage:   "REPL history file",
				Value:   defaultHistory(),
				Sources: cli.EnvVars("FUNCWRAP_HISTORY"),
			},
			&cli.StringFlag{
				Name:    "module",
				Aliases: []string{"m"},
				Usage:   "Module whose functions are called by their name",
				Value:   fnexample.Name,
				Sources: cli.EnvVars("FUNCWRAP_MODULE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Log definitions and overload selection",
				Sources: cli.EnvVars("FUNCWRAP_DEBUG"),
			},
		},
		Action: replAction,
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "Start the interactive REPL",
				Action: replAction,
			},
			{
				Name:      "call",
				Usage:     "Call a function once",
				ArgsUsage: "<name> [expr...]",
				Action:    callAction,
			},
			{
				Name:      "sigs",
				Usage:     "Print the native signatures",
				ArgsUsage: "[module...]",
				Action:    sigsAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func newEvaluator(cmd *cli.Command) (*repl.Evaluator, error) {
	var opts []funcwrap.ModuleOpt
	if cmd.Bool("debug") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		funcwrap.SetLogger(l)
		opts = append(opts, funcwrap.WithLogger(l))
	}
	primary, err := stdlib.New(cmd.String("module"), opts...)
	if err != nil {
		return nil, err
	}
	var others []*funcwrap.Module
	for _, name := range stdlib.Names() {
		if name != primary.Name {
			m, _ := stdlib.New(name, opts...)
			others = append(others, m)
		}
	}
	return repl.New(primary, others...), nil
}

func replAction(ctx context.Context, cmd *cli.Command) error {
	e, err := newEvaluator(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = funcwrap.Logger().Sync() }()
	return e.Run(ctx, repl.Options{HistoryPath: cmd.String("history")})
}

func callAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: funcwrap call <name> [expr...]")
	}
	e, err := newEvaluator(cmd)
	if err != nil {
		return err
	}
	ret, err := e.Call(cmd.Args().First(), cmd.Args().Tail()...)
	if err != nil {
		return err
	}
	fmt.Println(repl.Format(ret))
	return nil
}

func sigsAction(ctx context.Context, cmd *cli.Command) error {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		names = stdlib.Names()
	}
	for _, name := range names {
		m, err := stdlib.New(name)
		if err != nil {
			return err
		}
		fmt.Println(m.Tree())
	}
	return nil
}
