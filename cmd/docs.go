package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"clipboard/internal/config"
)

func newDocsCommand(rootCmd *cobra.Command) *cobra.Command {
	var (
		docsOutputDir string
		docsFormat    string
	)

	docsCmd := &cobra.Command{
		Use:    "docs",
		Short:  "Generate documentation",
		Long:   `Generate man pages and other documentation for clipboard.`,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateDocs(rootCmd, docsOutputDir, docsFormat)
		},
	}

	docsCmd.Flags().StringVar(&docsOutputDir, "output", "./docs", "Output directory for documentation")
	docsCmd.Flags().StringVar(&docsFormat, "format", "man", "Documentation format: man, md, yaml")

	return docsCmd
}

func generateDocs(rootCmd *cobra.Command, outputDir, format string) error {
	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	switch format {
	case "man":
		header := &doc.GenManHeader{
			Title:   "CLIPBOARD",
			Section: "1",
			Source:  config.AppName + " " + config.Version,
			Manual:  "Clipboard Manual",
		}
		return doc.GenManTree(rootCmd, header, outputDir)
	case "md":
		return doc.GenMarkdownTree(rootCmd, outputDir)
	case "yaml":
		return doc.GenYamlTree(rootCmd, outputDir)
	default:
		return fmt.Errorf("unsupported format: %s (supported: man, md, yaml)", format)
	}
}
