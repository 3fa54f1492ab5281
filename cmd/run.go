package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run \"<investor name>\"",
	Short: "Research a single investor and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		p, err := initPipeline("run")
		if err != nil {
			return err
		}

		result, err := p.Run(cmd.Context(), name)
		if err != nil {
			return eris.Wrap(err, "research run")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "encode result")
		}

		zap.L().Info("research complete", zap.String("investor", name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
