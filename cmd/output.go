package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateOutputFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format %q: must be text, json or yaml", format)
}

// render writes v as JSON or YAML, or delegates to text for the text format.
func render(cmd *cobra.Command, v interface{}, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	switch outputFlag {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func printLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

func printTable(w io.Writer, header table.Row, rows []table.Row) error {
	t := table.NewWriter()
	if header != nil {
		t.AppendHeader(header)
	}
	t.AppendRows(rows)
	t.SetStyle(table.StyleLight)
	return printLine(w, t.Render())
}

// readInput returns the contents of file ("-" reads stdin) or the joined args.
func readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := fileManager.ReadFile(file)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no input: pass it as an argument or use --file (- for stdin)")
	}
	return strings.Join(args, " "), nil
}
