package main

import (
	"github.com/spf13/cobra"

	"resume-analyzer/resume/export"
)

func newOptimizeCmd() *cobra.Command {
	var (
		taxonomyPath string
		pretty       bool
		opts         export.PresentationOptions
		noKeywords   bool
		noATS        bool
		topN         int
	)
	cmd := &cobra.Command{
		Use:   "optimize <resume.json|->",
		Short: "Analyze a resume and print export optimizations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			eng, err := buildEngine(taxonomyPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("no-keywords") {
				include := !noKeywords
				opts.IncludeKeywords = &include
			}
			if cmd.Flags().Changed("no-ats") {
				optimize := !noATS
				opts.OptimizeATS = &optimize
			}
			if cmd.Flags().Changed("top") {
				opts.TopN = &topN
			}

			report := eng.Analyze(doc)
			out, err := export.BuildOptimizations(doc, report.Analysis, eng.Taxonomy().Categories(), opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out, pretty)
		},
	}
	cmd.Flags().StringVarP(&taxonomyPath, "taxonomy", "t", "", "YAML taxonomy file replacing the built-in keyword table")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().StringVar(&opts.FormatStyle, "style", "", "Format style: professional, classic or modern")
	cmd.Flags().StringVar(&opts.FontSize, "font-size", "", "Font size: small, medium or large")
	cmd.Flags().StringVar(&opts.Spacing, "spacing", "", "Spacing: compact, standard or relaxed")
	cmd.Flags().BoolVar(&noKeywords, "no-keywords", false, "Do not weave keywords into the summary or competencies")
	cmd.Flags().BoolVar(&noATS, "no-ats", false, "Disable ATS-oriented formatting")
	cmd.Flags().IntVar(&topN, "top", export.DefaultTopN, "Number of top keywords to include")
	return cmd
}
