package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runic/internal/games/runic/presets"
)

var boardsCmd = &cobra.Command{
	Use:   "boards [dir]",
	Short: "List preset starting boards",
	Long: `List the built-in preset boards, plus any YAML presets found under dir.

A preset can be passed to 'runic play --board' by ID (built-in) or by path.

Examples:
  runic boards
  runic boards ./boards`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBoards,
}

func runBoards(_ *cobra.Command, args []string) {
	all, err := presets.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading built-in boards: %v\n", err)
		os.Exit(1)
	}

	builtinCount := len(all)
	if len(args) > 0 {
		found, skipped, err := presets.NewLoader(args[0]).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		paths := make([]string, 0, len(skipped))
		for path := range skipped {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			logger.Warn("skipping preset", "path", path, "err", skipped[path])
		}
		all = append(all, found...)
	}

	if len(all) == 0 {
		fmt.Println("No preset boards found.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, p := range all {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "----")
	for i, p := range all {
		size := fmt.Sprintf("%dx%d", p.Size(), p.Size())
		name := p.Name
		if i >= builtinCount {
			name += " (" + p.FilePath + ")"
		}
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, p.ID, size, name)
	}
}
