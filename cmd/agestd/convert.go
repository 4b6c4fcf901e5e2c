package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agegrader/agestd-go/pkg/agestd"
)

var convertCmd = &cobra.Command{
	Use:   "convert [workbook...]",
	Short: "Convert standards workbooks to JSON",
	Long: `Convert locates RoadStd Excel workbooks and writes one normalized JSON
document per workbook, next to the source file.

With no arguments, the standards directory is searched recursively for
.xls/.xlsx files whose name contains "roadstd". With arguments, exactly
the named workbooks are converted. The first failure aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := agestd.DefaultOptions()
		opts.Category = viper.GetString("category")

		if len(args) > 0 {
			return agestd.ConvertFiles(args, opts, cmd.OutOrStdout())
		}
		return agestd.ConvertAll(viper.GetString("standards-dir"), opts, cmd.OutOrStdout())
	},
}

func init() {
	convertCmd.Flags().String("standards-dir", "age_grade_standards", "directory searched for RoadStd workbooks")
	convertCmd.Flags().String("category", agestd.CategoryRoad, "category recorded in document metadata")

	viper.BindPFlag("standards-dir", convertCmd.Flags().Lookup("standards-dir"))
	viper.BindPFlag("category", convertCmd.Flags().Lookup("category"))

	rootCmd.AddCommand(convertCmd)
}
