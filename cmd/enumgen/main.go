/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command enumgen writes the declarations of a package's entity instances.
//
// It scans a package for exported package-level variables holding instances
// of its concrete entity types and writes a file whose init declares them,
// in source order, with enumx.MustDeclare:
//
//	//go:generate go run dirpx.dev/enumx/cmd/enumgen
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

var (
	output  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "enumgen [package]",
	Short:        "Generate enumx declarations for a package",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := "."
		if len(args) == 1 {
			pattern = args[0]
		}
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return run(cmd.OutOrStdout(), pattern, output, log)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "enumx_gen.go", "generated file, relative to the package directory unless absolute")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every declaration found")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(w io.Writer, pattern, output string, log *slog.Logger) error {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return fmt.Errorf("load %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return fmt.Errorf("load %s: %w", pkg.PkgPath, pkg.Errors[0])
	}
	if len(pkg.GoFiles) == 0 {
		return errors.New("package has no Go files")
	}

	groups := scan(pkg.Syntax)
	for _, g := range groups {
		log.Debug("found type", "type", g.Type, "instances", g.Vars)
	}
	if len(groups) == 0 {
		log.Warn("no entity instances found", "package", pkg.PkgPath)
		return nil
	}

	src, err := render(pkg.Name, groups)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path := output
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(pkg.GoFiles[0]), output)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(w, "%s %s: %d types declared\n", green("✓"), path, len(groups))
	return nil
}
