package main

import (
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		taxonomyPath string
		pretty       bool
		scoreOnly    bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <resume.json|->",
		Short: "Analyze a resume and print the analysis and score",
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
			report := eng.Analyze(doc)
			if scoreOnly {
				return writeJSON(cmd.OutOrStdout(), report.Score, pretty)
			}
			return writeJSON(cmd.OutOrStdout(), report, pretty)
		},
	}
	cmd.Flags().StringVarP(&taxonomyPath, "taxonomy", "t", "", "YAML taxonomy file replacing the built-in keyword table")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().BoolVar(&scoreOnly, "score-only", false, "Print only the score object")
	return cmd
}
