package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: symbols <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  stylesheet Print the stylesheet markup for a font variant")
	fmt.Fprintln(w, "  icon       Print the markup for one icon")
	fmt.Fprintln(w, "  render     Render a Markdown file with :icon[name] shortcodes to HTML")
	fmt.Fprintln(w, "  inject     Add the stylesheet to an existing HTML file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'symbols help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolved settings")
}

func printVariantFlags(w io.Writer) {
	fmt.Fprintln(w, "Variant:")
	fmt.Fprintln(w, "      --variant <name>      outlined, rounded, sharp, self-hosted (default: rounded)")
	fmt.Fprintln(w, "      --source <path>       Font file path or URL (implies self-hosted)")
}

func printIconFlags(w io.Writer) {
	fmt.Fprintln(w, "Icon:")
	fmt.Fprintln(w, "  -s, --size <px>           Icon size in pixels (0 = inherit)")
	fmt.Fprintln(w, "      --color <color>       dark, dark-inactive, light, light-inactive, or any CSS color")
}

func printOutputFlag(w io.Writer) {
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
}

// printStylesheetUsage prints usage for the stylesheet command.
func printStylesheetUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: symbols stylesheet [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the <link> or <style> markup that loads the icon font.")
	fmt.Fprintln(w, "Mount it once per page, in <head>.")
	fmt.Fprintln(w)
	printVariantFlags(w)
	printOutputFlag(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printIconUsage prints usage for the icon command.
func printIconUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: symbols icon <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the <span> markup for one icon, e.g. 'symbols icon home --size 48'.")
	fmt.Fprintln(w, "Browse names at https://fonts.google.com/symbols")
	fmt.Fprintln(w)
	printIconFlags(w)
	printOutputFlag(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: symbols render <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown to a standalone HTML page. Shortcodes such as")
	fmt.Fprintln(w, ":icon[home] or :icon[warning]{size=32 color=light} become icons.")
	fmt.Fprintln(w)
	printVariantFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Icon defaults:")
	fmt.Fprintln(w, "  -s, --size <px>           Size for shortcodes without size=")
	fmt.Fprintln(w, "      --color <color>       Color for shortcodes without color=")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Page title (default: input file name)")
	fmt.Fprintln(w, "      --lang <tag>          Page language (default: en)")
	fmt.Fprintln(w, "      --highlight-style <s> Code highlighting style (default: github)")
	fmt.Fprintln(w, "  -w, --watch               Re-render on every save until interrupted")
	printOutputFlag(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printInjectUsage prints usage for the inject command.
func printInjectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: symbols inject <input.html> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Insert the stylesheet markup before </head>. Files that already")
	fmt.Fprintln(w, "contain it are written unchanged.")
	fmt.Fprintln(w)
	printVariantFlags(w)
	printOutputFlag(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "stylesheet":
		printStylesheetUsage(env.Stdout)
	case "icon":
		printIconUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "inject":
		printInjectUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: symbols version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: symbols help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
