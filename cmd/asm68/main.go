// Command asm68 assembles 6809/6309 programs built with the asm68
// statement DSL and writes the object code as a binary image.
//
// The source argument names either a built-in example program or a Go
// plugin (.so) exporting
//
//	func Program() ([]stmt.Statement, error)
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"plugin"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rob-smallshire/asm68/examples"
	"github.com/rob-smallshire/asm68/pkg/asm"
	"github.com/rob-smallshire/asm68/pkg/config"
	"github.com/rob-smallshire/asm68/pkg/export"
	"github.com/rob-smallshire/asm68/pkg/stmt"
)

const version = "1.0.0"

// sysexits-style exit codes, matching the reference implementation's
// use of EX_DATAERR and EX_OSFILE.
const (
	exitOK      = 0
	exitDataErr = 65
	exitOSFile  = 72
)

// exitError carries a process exit code out of a cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

// moduleLoadError reports that a source could not be loaded as a
// program.
type moduleLoadError struct {
	path string
	err  error
}

func (e *moduleLoadError) Error() string {
	return fmt.Sprintf("could not load module %s: %v", e.path, e.err)
}

func main() {
	var verbosity string

	rootCmd := &cobra.Command{
		Use:           "asm68",
		Short:         "A Motorola 6809 and Hitachi 6309 cross-assembler",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", "WARNING",
		"The logging level to use (DEBUG, INFO, WARNING, ERROR)")

	var output string
	var format string
	var repeat int
	var configPath string

	asmCmd := &cobra.Command{
		Use:   "asm [source]",
		Short: "Assemble a program and export its object code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseVerbosity(verbosity)
			if err != nil {
				return &exitError{code: exitDataErr, err: err}
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					if errors.Is(err, os.ErrNotExist) {
						return &exitError{code: exitOSFile, err: err}
					}
					return &exitError{code: exitDataErr, err: err}
				}
			}
			if cmd.Flags().Changed("format") || cfg.Format == "" {
				cfg.Format = format
			}
			if cmd.Flags().Changed("repeat") {
				cfg.Repeat = repeat
			}

			return runAsm(args[0], output, cfg, logger)
		},
	}
	asmCmd.Flags().StringVar(&output, "output", "", "Output file path (default stdout)")
	asmCmd.Flags().StringVar(&format, "format", "bin", "Output file format (bin, hex, srec)")
	asmCmd.Flags().IntVar(&repeat, "repeat", 1, "Number of copies in the binary output file")
	asmCmd.Flags().StringVar(&configPath, "config", "", "TOML file with export defaults")

	listCmd := &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example programs",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range examples.Names() {
				p, _ := examples.Lookup(name)
				fmt.Printf("%-16s %s\n", p.Name, p.Description)
			}
		},
	}

	rootCmd.AddCommand(asmCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, exit.err)
			os.Exit(exit.code)
		}
		os.Exit(1)
	}
	os.Exit(exitOK)
}

func runAsm(source, output string, cfg config.Config, logger *slog.Logger) error {
	statements, err := loadStatements(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &exitError{code: exitOSFile, err: err}
		}
		return &exitError{code: exitDataErr, err: err}
	}

	blocks, err := asm.Assemble(statements, asm.Config{Logger: logger})
	if err != nil {
		var tooMany *asm.TooManyPassesError
		if errors.As(err, &tooMany) {
			fmt.Fprintln(os.Stderr, "Too many assembler passes required")
			fmt.Fprintf(os.Stderr, "Unresolved labels: %s\n", strings.Join(tooMany.UnresolvedLabelNames, ", "))
			fmt.Fprintf(os.Stderr, "Unreferenced labels: %s\n", strings.Join(tooMany.UnreferencedLabelNames, ", "))
		}
		return &exitError{code: exitDataErr, err: err}
	}

	for address, code := range blocks {
		hexAssembly := make([]string, len(code))
		for i, b := range code {
			hexAssembly[i] = fmt.Sprintf("%02X", b)
		}
		logger.Debug(fmt.Sprintf("%04X: %s", address, strings.Join(hexAssembly, " ")))
		logger.Info("assembled fragment", "address", fmt.Sprintf("0x%04X", address), "length", len(code))
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return &exitError{code: exitOSFile, err: err}
		}
		defer f.Close()
		w = f
	}
	if err := exportBlocks(w, blocks, cfg); err != nil {
		return &exitError{code: exitDataErr, err: err}
	}
	return nil
}

// loadStatements resolves the source against the example registry
// first, then as a Go plugin path.
func loadStatements(source string) ([]stmt.Statement, error) {
	if p, ok := examples.Lookup(source); ok {
		return p.Build()
	}
	if _, err := os.Stat(source); err != nil {
		return nil, err
	}
	p, err := plugin.Open(source)
	if err != nil {
		return nil, &moduleLoadError{path: source, err: err}
	}
	sym, err := p.Lookup("Program")
	if err != nil {
		return nil, &moduleLoadError{path: source, err: err}
	}
	build, ok := sym.(func() ([]stmt.Statement, error))
	if !ok {
		return nil, &moduleLoadError{path: source, err: fmt.Errorf("Program has type %T", sym)}
	}
	statements, err := build()
	if err != nil {
		return nil, &moduleLoadError{path: source, err: err}
	}
	return statements, nil
}

func exportBlocks(w io.Writer, blocks map[int][]byte, cfg config.Config) error {
	return export.Export(w, cfg.Format, blocks, cfg.ExportWindow(), cfg.Repeat)
}

func parseVerbosity(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid verbosity %q: use DEBUG, INFO, WARNING or ERROR", s)
	}
}
