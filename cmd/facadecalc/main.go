package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var tablesFile string

	root := &cobra.Command{
		Use:          "facadecalc",
		Short:        "Maximum unprotected openings of a building facade (NBC 2015, 3.2.3.1)",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&tablesFile, "tables", "", "YAML file replacing the embedded reference tables")

	root.AddCommand(calcCmd(&tablesFile))
	root.AddCommand(checkCmd())
	root.AddCommand(tablesCmd(&tablesFile))
	return root
}

func calcCmd(tablesFile *string) *cobra.Command {
	var (
		in         calcFlags
		asJSON     bool
		openingsM2 float64
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the maximum percentage of unprotected openings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(*tablesFile)
			if err != nil {
				return err
			}
			input := in.input()
			if cmd.Flags().Changed("openings") {
				input.OpeningsM2 = &openingsM2
			}
			res, err := store.Calculate(input)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.width, "width", 0, "facade width in m")
	f.Float64Var(&in.height, "height", 0, "facade height in m")
	f.Float64Var(&in.distance, "distance", 0, "limiting distance in m")
	f.StringVar(&in.group, "group", "", "major occupancy group (A-F)")
	f.IntVar(&in.division, "division", 0, "occupancy division")
	f.BoolVar(&in.sprinklered, "sprinklered", false, "building is sprinklered")
	f.Float64Var(&in.area, "area", 0, "exposing building face area in m² (default width x height)")
	f.Float64Var(&openingsM2, "openings", 0, "actual unprotected opening area in m²")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	for _, name := range []string{"width", "height", "distance", "group"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func checkCmd() *cobra.Command {
	var total, openingsM2, maxPercent float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an opening area against a maximum percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.OutOrStdout(), total, openingsM2, maxPercent)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&total, "area", 0, "exposing building face area in m²")
	f.Float64Var(&openingsM2, "openings", 0, "unprotected opening area in m²")
	f.Float64Var(&maxPercent, "max", 0, "maximum permitted percentage")
	for _, name := range []string{"area", "openings", "max"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func tablesCmd(tablesFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [code]",
		Short: "List the reference tables or the rows of one table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(*tablesFile)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return listTables(cmd.OutOrStdout(), store)
			}
			return printTable(cmd.OutOrStdout(), store, args[0])
		},
	}
}
