package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	symbols "github.com/alnah/go-materialsymbols"
	"github.com/alnah/go-materialsymbols/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if hasVerboseFlag(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	env := DefaultEnv()
	env.Ctx = ctx
	code := runMain(os.Args, env)
	stop()
	os.Exit(code)
}

// runMain dispatches the command in args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "stylesheet":
		err = runStylesheet(env.Context(), rest, env)
	case "icon":
		err = runIcon(env.Context(), rest, env)
	case "render":
		err = runRender(env.Context(), rest, env)
	case "inject":
		err = runInject(env.Context(), rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "symbols %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hasVerboseFlag reports whether -v or --verbose appears in args.
func hasVerboseFlag(args []string) bool {
	for _, a := range args[1:] {
		if a == "-v" || a == "--verbose" {
			return true
		}
		if a == "--" {
			return false
		}
	}
	return false
}

// hintFor returns a hint for errors raised by the component layer.
// Config and output errors carry their hint from where they are created.
func hintFor(err error) string {
	switch {
	case errors.Is(err, symbols.ErrUnknownVariant):
		return hints.ForVariant(symbols.VariantNames())
	case errors.Is(err, symbols.ErrMissingSource):
		return hints.ForMissingSource()
	case errors.Is(err, symbols.ErrEmptyMarkdown):
		return hints.ForShortcodes()
	default:
		return ""
	}
}
