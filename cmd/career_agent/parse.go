package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/parsing"
)

var parseCommand = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Parse a resume file into a structured record",
	Long: `Extracts text from a PDF or DOCX resume (with OCR fallback for scanned PDFs)
and recovers degree, domain, technical skills, and years of experience.

The structured record is printed to stdout as JSON. Parsing never needs API
credentials or the career corpus.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseConfigPath  string
	parseDegreeTable string
	parseTaxonomy    string
	parseVerbose     bool
)

func init() {
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCommand.Flags().StringVar(&parseDegreeTable, "degrees", "", "Path to the degree/domain CSV table")
	parseCommand.Flags().StringVar(&parseTaxonomy, "skills", "", "Path to the technical-skill taxonomy JSON")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary in addition to JSON")

	rootCmd.AddCommand(parseCommand)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(parseConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("degrees") {
		cfg.DegreeTablePath = parseDegreeTable
	}
	if cmd.Flags().Changed("skills") {
		cfg.SkillTaxonomyPath = parseTaxonomy
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}

	parser := parsing.NewParser(cfg.DegreeTablePath, cfg.SkillTaxonomyPath)
	resume := parser.ParseFile(args[0])

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintParsedResume(resume)
	}

	return printJSON(resume)
}
