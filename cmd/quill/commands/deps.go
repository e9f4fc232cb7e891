package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

// depsJSON is the machine readable form of one entry's import graph.
type depsJSON struct {
	Entry   string              `json:"entry"`
	Files   []string            `json:"files"`
	Imports map[string][]string `json:"imports"`
}

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps [entries...]",
		Short: "List the stylesheets each entry imports, directly or transitively",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			graphs, err := c.app.Deps(cmd.Context(), args)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				return writeDepsJSON(cmd.OutOrStdout(), graphs)
			case "text":
				return writeDepsText(cmd.OutOrStdout(), graphs)
			default:
				return zerr.With(domain.ErrUnknownFormat, "format", format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	return cmd
}

// writeDepsText prints each entry followed by its dependencies, relative to the
// working directory where possible.
func writeDepsText(w io.Writer, graphs []*domain.ImportGraph) error {
	cwd, _ := os.Getwd()
	rel := func(path string) string {
		if cwd == "" {
			return path
		}
		if r, err := filepath.Rel(cwd, path); err == nil {
			return r
		}
		return path
	}

	for _, g := range graphs {
		if _, err := fmt.Fprintln(w, rel(g.Entry())); err != nil {
			return err
		}
		for _, file := range g.Files()[1:] {
			if _, err := fmt.Fprintf(w, "  %s\n", rel(file)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDepsJSON(w io.Writer, graphs []*domain.ImportGraph) error {
	out := make([]depsJSON, 0, len(graphs))
	for _, g := range graphs {
		entry := depsJSON{
			Entry:   g.Entry(),
			Files:   g.Files(),
			Imports: make(map[string][]string),
		}
		for _, file := range entry.Files {
			if imports := g.Imports(file); len(imports) > 0 {
				entry.Imports[file] = imports
			}
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
