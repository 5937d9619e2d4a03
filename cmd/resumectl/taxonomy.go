package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTaxonomyCmd() *cobra.Command {
	var (
		taxonomyPath string
		asYAML       bool
	)
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the active keyword taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := buildEngine(taxonomyPath)
			if err != nil {
				return err
			}
			spec := eng.Taxonomy().Spec()
			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(spec)
			}
			return writeJSON(cmd.OutOrStdout(), spec, true)
		},
	}
	cmd.Flags().StringVarP(&taxonomyPath, "taxonomy", "t", "", "YAML taxonomy file to validate and print")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print YAML instead of JSON")
	return cmd
}
