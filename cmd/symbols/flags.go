package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// variantFlags selects the icon font variant.
type variantFlags struct {
	name   string
	source string
}

// iconFlags holds icon styling flags.
type iconFlags struct {
	size  int
	color string
}

// documentFlags holds rendered document flags.
type documentFlags struct {
	title string
	lang  string
	style string
	watch bool
}

// commandFlags holds all flags of a command. Commands register only the
// groups they use; changed records which flags were set explicitly.
type commandFlags struct {
	common   commonFlags
	variant  variantFlags
	icon     iconFlags
	document documentFlags
	output   string
	groups   flagGroups
	changed  func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved settings")
}

// addVariantFlags adds variant selection flags to a FlagSet.
func addVariantFlags(fs *flag.FlagSet, f *variantFlags) {
	fs.StringVar(&f.name, "variant", "", "icon variant: outlined, rounded, sharp, self-hosted")
	fs.StringVar(&f.source, "source", "", "font file path or URL for self-hosted variant")
}

// addIconFlags adds icon styling flags to a FlagSet.
func addIconFlags(fs *flag.FlagSet, f *iconFlags) {
	fs.IntVarP(&f.size, "size", "s", 0, "icon size in pixels (0 = inherit)")
	fs.StringVar(&f.color, "color", "", "icon color: dark, dark-inactive, light, light-inactive, or CSS color")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.lang, "lang", "", "document language")
	fs.StringVar(&f.style, "highlight-style", "", "syntax highlighting style for code blocks")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-render when the input changes (requires --output)")
}

// addOutputFlag adds the output path flag to a FlagSet.
func addOutputFlag(fs *flag.FlagSet, output *string) {
	fs.StringVarP(output, "output", "o", "", "output file (default: stdout)")
}

// flagGroups selects which flag groups a command registers.
type flagGroups struct {
	variant  bool
	icon     bool
	document bool
	output   bool
}

// parseCommandFlags parses flags for a command and returns positional args.
func parseCommandFlags(name string, args []string, groups flagGroups, usage func(io.Writer), stderr io.Writer) (*commandFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &commandFlags{groups: groups}

	addCommonFlags(fs, &f.common)
	if groups.variant {
		addVariantFlags(fs, &f.variant)
	}
	if groups.icon {
		addIconFlags(fs, &f.icon)
	}
	if groups.document {
		addDocumentFlags(fs, &f.document)
	}
	if groups.output {
		addOutputFlag(fs, &f.output)
	}

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed

	return f, fs.Args(), nil
}
