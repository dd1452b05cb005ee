package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	symbols "github.com/alnah/go-materialsymbols"
	"github.com/alnah/go-materialsymbols/internal/config"
	"github.com/alnah/go-materialsymbols/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrNoInput         = errors.New("no input specified")
	ErrTooManyArgs     = errors.New("too many arguments")
	ErrMissingIconName = errors.New("icon name is required")
	ErrReadInput       = errors.New("failed to read input file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrWatchNeedsFile  = errors.New("--watch requires --output")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// settings are the config values after CLI flags are merged in.
type settings struct {
	variant symbols.Variant
	icon    symbols.Icon // defaults: size and color, no name
	doc     config.DocumentConfig
}

// parseFlags parses command flags, translating parse failures to
// ErrInvalidFlags. The returned flags are nil when help was requested.
func parseFlags(name string, args []string, groups flagGroups, usage func(io.Writer), env *Environment) (*commandFlags, []string, error) {
	f, positional, err := parseCommandFlags(name, args, groups, usage, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return f, positional, nil
}

// loadSettings loads the config (if any) and merges CLI flags into it.
// CLI flags win over config values. The variant is resolved only for
// commands that register the variant flags.
func loadSettings(env *Environment, f *commandFlags, log *logger) (*settings, error) {
	cfg := config.DefaultConfig()
	if f.common.config != "" {
		var err error
		cfg, err = config.LoadConfigFS(env.fs(), f.common.config)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err,
				hints.ForConfigNotFound(config.SearchPaths(f.common.config), config.AppDirName))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		log.Debugf("Config: %s", f.common.config)
	}

	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{
		icon: symbols.Icon{
			Size:  cfg.Icon.Size,
			Color: symbols.ParseColor(cfg.Icon.Color),
		},
		doc: cfg.Document,
	}
	if !f.groups.variant {
		return s, nil
	}

	variant, err := cfg.ResolveVariant()
	if err != nil {
		return nil, err
	}
	s.variant = variant
	log.Debugf("Variant: %s", s.variant)
	if s.variant.IsSelfHosted() {
		log.Debugf("Font source: %s", s.variant.Source())
	}
	return s, nil
}

// mergeFlags copies explicitly set CLI flags into cfg.
func mergeFlags(f *commandFlags, cfg *config.Config) {
	changed := f.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("variant") {
		cfg.Variant.Name = f.variant.name
	}
	if changed("source") {
		cfg.Variant.Source = f.variant.source
		// --source alone implies the self-hosted variant.
		if !changed("variant") {
			cfg.Variant.Name = symbols.VariantNameSelfHosted
		}
	}
	if changed("size") {
		cfg.Icon.Size = f.icon.size
	}
	if changed("color") {
		cfg.Icon.Color = f.icon.color
	}
	if changed("title") {
		cfg.Document.Title = f.document.title
	}
	if changed("lang") {
		cfg.Document.Lang = f.document.lang
	}
	if changed("highlight-style") {
		cfg.Document.HighlightStyle = f.document.style
	}
}

// runStylesheet prints the stylesheet markup of the configured variant.
func runStylesheet(_ context.Context, args []string, env *Environment) error {
	f, positional, err := parseFlags("stylesheet", args, flagGroups{variant: true, output: true}, printStylesheetUsage, env)
	if err != nil || f == nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(positional, " "))
	}

	log := newLogger(env, f.common)
	s, err := loadSettings(env, f, log)
	if err != nil {
		return err
	}

	return writeOutput(env, log, f.output, symbols.NewStylesheet(s.variant).HTML()+"\n")
}

// runIcon prints the markup of one icon.
func runIcon(_ context.Context, args []string, env *Environment) error {
	f, positional, err := parseFlags("icon", args, flagGroups{icon: true, output: true}, printIconUsage, env)
	if err != nil || f == nil {
		return err
	}
	if len(positional) == 0 || strings.TrimSpace(positional[0]) == "" {
		return ErrMissingIconName
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(positional[1:], " "))
	}

	log := newLogger(env, f.common)
	s, err := loadSettings(env, f, log)
	if err != nil {
		return err
	}

	icon := s.icon
	icon.Name = positional[0]
	log.Debugf("Style: %s", icon.Style())

	return writeOutput(env, log, f.output, icon.HTML()+"\n")
}

// runRender renders a Markdown file with icon shortcodes to an HTML page.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseFlags("render", args, flagGroups{variant: true, icon: true, document: true, output: true}, printRenderUsage, env)
	if err != nil || f == nil {
		return err
	}
	inputPath, err := singleInput(positional)
	if err != nil {
		return err
	}

	log := newLogger(env, f.common)
	s, err := loadSettings(env, f, log)
	if err != nil {
		return err
	}

	if f.document.watch && f.output == "" {
		return ErrWatchNeedsFile
	}

	doc := symbols.NewDocument(
		symbols.WithVariant(s.variant),
		symbols.WithIconDefaults(s.icon.Size, s.icon.Color),
		symbols.WithHighlightStyle(s.doc.HighlightStyle),
	)
	title := s.doc.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	render := func() error {
		content, err := readInput(env, inputPath)
		if err != nil {
			return err
		}
		page, err := doc.Render(ctx, symbols.DocumentInput{
			Markdown: content,
			Title:    title,
			Lang:     s.doc.Lang,
		})
		if err != nil {
			return fmt.Errorf("rendering %s: %w", inputPath, err)
		}
		return writeOutput(env, log, f.output, page)
	}

	if err := render(); err != nil {
		return err
	}
	if !f.document.watch {
		return nil
	}

	log.Infof("Watching %s (Ctrl+C to stop)", inputPath)
	return watchFile(ctx, inputPath, watchDebounce, func() {
		if err := render(); err != nil && ctx.Err() == nil {
			log.Warnf("error: %v", err)
		}
	})
}

// runInject mounts the configured stylesheet into an existing HTML file.
func runInject(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseFlags("inject", args, flagGroups{variant: true, output: true}, printInjectUsage, env)
	if err != nil || f == nil {
		return err
	}
	inputPath, err := singleInput(positional)
	if err != nil {
		return err
	}

	log := newLogger(env, f.common)
	s, err := loadSettings(env, f, log)
	if err != nil {
		return err
	}

	content, err := readInput(env, inputPath)
	if err != nil {
		return err
	}

	out := symbols.InjectStylesheet(ctx, content, s.variant)
	if err := ctx.Err(); err != nil {
		return err
	}
	if out == content {
		log.Debugf("Stylesheet already present in %s", inputPath)
	}

	return writeOutput(env, log, f.output, out)
}

// singleInput returns the one positional input path.
func singleInput(positional []string) (string, error) {
	if len(positional) == 0 {
		return "", ErrNoInput
	}
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(positional[1:], " "))
	}
	return positional[0], nil
}

// readInput reads a whole input file.
func readInput(env *Environment, path string) (string, error) {
	data, err := afero.ReadFile(env.fs(), path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}
	return string(data), nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(env *Environment, log *logger, path, content string) error {
	if path == "" {
		_, err := io.WriteString(env.Stdout, content)
		return err
	}

	fs := env.fs()
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %s: %w%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
		}
	}
	if err := afero.WriteFile(fs, path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	log.Infof("Wrote %s (%s)", path, humanize.Bytes(uint64(len(content))))
	return nil
}
