package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	FS     afero.Fs // input and output files
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Ctx:    context.Background(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		FS:     afero.NewOsFs(),
	}
}

// fs returns the environment filesystem, defaulting to the OS.
func (e *Environment) fs() afero.Fs {
	if e.FS == nil {
		return afero.NewOsFs()
	}
	return e.FS
}

// Context returns the environment context, defaulting to Background.
func (e *Environment) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// logger writes diagnostics to stderr according to --quiet and --verbose.
type logger struct {
	w       io.Writer
	quiet   bool
	verbose bool
}

func newLogger(env *Environment, f commonFlags) *logger {
	return &logger{w: env.Stderr, quiet: f.quiet, verbose: f.verbose && !f.quiet}
}

// Infof prints unless --quiet is set.
func (l *logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Warnf always prints. Used for errors that do not end the command.
func (l *logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Debugf prints only with --verbose.
func (l *logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}
