package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/stigoleg/mouse-jiggler/internal/config"
)

// gen-docs writes shell completions and a man page for the jiggler command
// into docs/completions and man/.

const appName = "jiggler"

func main() {
	cmd := newCommand()

	if err := writeCompletions(cmd, filepath.Join("docs", "completions")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan(cmd, "man"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCommand returns the jiggler root command with its help and version
// flags registered, as they are when the program runs.
func newCommand() *cobra.Command {
	cmd := config.NewRootCommand(config.Version, func(*config.Options) error { return nil })
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	return cmd
}

func writeCompletions(cmd *cobra.Command, base string) error {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	gens := []struct {
		file string
		gen  func(string) error
	}{
		{appName + ".bash", func(p string) error { return cmd.GenBashCompletionFileV2(p, true) }},
		{"_" + appName, cmd.GenZshCompletionFile},
		{appName + ".fish", func(p string) error { return cmd.GenFishCompletionFile(p, true) }},
		{appName + ".ps1", cmd.GenPowerShellCompletionFileWithDesc},
	}
	for _, g := range gens {
		if err := g.gen(filepath.Join(base, g.file)); err != nil {
			return fmt.Errorf("failed to write %s: %w", g.file, err)
		}
	}
	return nil
}

func writeMan(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	header := &doc.GenManHeader{
		Title:   "JIGGLER",
		Section: "1",
		Source:  "mouse-jiggler " + config.Version,
		Manual:  "User Commands",
	}
	if err := doc.GenManTree(cmd, header, dir); err != nil {
		return fmt.Errorf("failed to write man page: %w", err)
	}
	return nil
}
