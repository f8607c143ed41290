package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingoflow/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Work with the sentence catalog",
}

var corpusListCmd = &cobra.Command{
	Use:   "list [language]",
	Short: "List languages, or the categories of a language",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCorpus(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			fmt.Fprintf(out, "%-12s  %-12s  %s\n", "ID", "Label", "Flag")
			fmt.Fprintln(out, strings.Repeat("─", 32))
			for _, l := range c.Languages() {
				fmt.Fprintf(out, "%-12s  %-12s  %s\n", l.ID, l.Label, l.Flag)
			}
			return nil
		}

		language := strings.ToLower(args[0])
		if !c.HasLanguage(language) {
			return fmt.Errorf("unknown language %q", args[0])
		}
		fmt.Fprintf(out, "%-14s  %-14s  %7s  %s\n", "ID", "Label", "Phrases", "Levels")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for _, ov := range c.Overview(language) {
			levels := make([]string, 0, len(ov.Levels))
			for _, l := range ov.Levels {
				levels = append(levels, string(l))
			}
			fmt.Fprintf(out, "%-14s  %-14s  %7d  %s\n", ov.ID, ov.Label, ov.TotalPhrases, strings.Join(levels, ","))
		}
		return nil
	},
}

var corpusExportCmd = &cobra.Command{
	Use:   "export <file.yaml|file.xlsx>",
	Short: "Write the active catalog as YAML or as an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCorpus(cfg)
		if err != nil {
			return err
		}
		path := args[0]
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx":
			if err := corpus.WriteXLSXTemplate(path, c); err != nil {
				return err
			}
		case ".yaml", ".yml":
			if err := writeCatalogYAML(path, c); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported export format %q (use .yaml or .xlsx)", filepath.Ext(path))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var corpusImportCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Merge items from an XLSX workbook into the catalog and write YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		base, err := loadCorpus(cfg)
		if err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("out")

		merged, res, err := corpus.LoadXLSX(args[0], base)
		if err != nil {
			return err
		}
		if err := writeCatalogYAML(outPath, merged); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Rows: %d  Imported: %d  Skipped: %d\n", res.Rows, res.Imported, res.Skipped)
		for _, e := range res.Errors {
			fmt.Fprintln(out, "  "+e)
		}
		fmt.Fprintf(out, "Wrote %s (use --corpus %s to practice with it)\n", outPath, outPath)
		return nil
	},
}

func init() {
	corpusImportCmd.Flags().String("out", "catalog.yaml", "Output YAML catalog path")

	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	corpusCmd.AddCommand(corpusImportCmd)
}

func writeCatalogYAML(path string, c *corpus.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
