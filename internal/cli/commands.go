package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gobeaver/mimekit"
	"github.com/spf13/cobra"
)

// stdinName selects standard input as a command argument
const stdinName = "-"

func newExtCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ext <extension>...",
		Short: "Resolve file extensions",
		Long:  `Resolve each extension (".png", ".JPG") against the type registry.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, ext := range args {
				results = append(results, result{Input: ext, Type: a.resolver.ByExtension(ext)})
			}
			return writeResults(cmd.OutOrStdout(), a.output, results)
		},
	}
}

func newSniffCommand(a *app) *cobra.Command {
	var hint string

	cmd := &cobra.Command{
		Use:   "sniff <file>...",
		Short: "Identify files by content",
		Long: `Identify each file from its leading bytes, using its extension to break ties
between formats sharing a signature and falling back to the image decoders.
Use "-" to read standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, name := range args {
				d, err := a.sniff(cmd, name, hint)
				if err != nil {
					return err
				}
				results = append(results, result{Input: name, Type: d})
			}
			return writeResults(cmd.OutOrStdout(), a.output, results)
		},
	}

	cmd.Flags().StringVar(&hint, "name", "", "Filename to take the extension hint from instead of the path")
	return cmd
}

func (a *app) sniff(cmd *cobra.Command, name, hint string) (mimekit.Descriptor, error) {
	if hint == "" && name != stdinName {
		hint = name
	}

	rc, err := open(cmd, name)
	if err != nil {
		return mimekit.Unknown, err
	}
	defer rc.Close()

	d, err := a.resolver.DetectReader(rc, hint)
	if err != nil {
		return mimekit.Unknown, fmt.Errorf("%s: %w", name, err)
	}
	a.logger.Debug("classified", "input", name, "type", d.Name())
	return d, nil
}

func newImageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "image <file>...",
		Short: "Identify images with the installed image decoders",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, name := range args {
				data, err := readAll(cmd, name)
				if err != nil {
					return err
				}
				results = append(results, result{Input: name, Type: a.resolver.ByImageDecoder(data)})
			}
			return writeResults(cmd.OutOrStdout(), a.output, results)
		},
	}
}

// readAll reads the whole of name. Some image formats keep their header
// metadata after the pixel data.
func readAll(cmd *cobra.Command, name string) ([]byte, error) {
	rc, err := open(cmd, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

func newTypesCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List known types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *mimekit.Category
			if category != "" {
				c, ok := mimekit.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				filter = &c
			}

			var (
				keys        []string
				descriptors []mimekit.Descriptor
			)
			for _, e := range a.resolver.Registry().Entries() {
				if filter != nil && e.Descriptor.Category() != *filter {
					continue
				}
				keys = append(keys, e.Key)
				descriptors = append(descriptors, e.Descriptor)
			}
			return writeDescriptors(cmd.OutOrStdout(), a.output, keys, descriptors)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (application, audio, image, video, unknown)")
	return cmd
}

func open(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}
