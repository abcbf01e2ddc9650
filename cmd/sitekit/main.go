package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commandFunc runs one subcommand with its flags already stripped of the
// command name.
type commandFunc func(ctx context.Context, args []string, env *Environment) error

// commands maps subcommand names to their implementation.
var commands = map[string]commandFunc{
	"dates":     runDates,
	"transform": runTransform,
	"posts":     runPosts,
	"watch":     runWatch,
}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a subcommand and maps its error to an exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[0], args[1:]
	switch name {
	case "help", "-h", "--help":
		return runHelp(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitekit %s\n", Version)
		return ExitSuccess
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	err := cmd(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

