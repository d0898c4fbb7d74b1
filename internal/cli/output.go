package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gobeaver/mimekit"
	"go.yaml.in/yaml/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

// result is one classified input
type result struct {
	Input string             `json:"input" yaml:"input"`
	Type  mimekit.Descriptor `json:"type" yaml:"type"`
}

func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		return encodeYAML(w, results)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tTYPE\tCATEGORY\tDESCRIPTION")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Input, r.Type.Name(), r.Type.Category(), r.Type.FriendlyName())
	}
	return tw.Flush()
}

func writeDescriptors(w io.Writer, format string, keys []string, descriptors []mimekit.Descriptor) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(descriptors)
	case formatYAML:
		return encodeYAML(w, descriptors)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTYPE\tCATEGORY\tEXTENSIONS\tDESCRIPTION")
	for i, d := range descriptors {
		exts := strings.Join(d.Extensions(), ",")
		if exts == "" {
			exts = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", keys[i], d.Name(), d.Category(), exts, d.FriendlyName())
	}
	return tw.Flush()
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
