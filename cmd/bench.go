package cmd

import (
	"context"

	"mvc/experiments"

	"github.com/spf13/cobra"
)

func newBenchCommand(ctx context.Context) *cobra.Command {
	var (
		manifestPath string
		outRoot      string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark described by a manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return experiments.RunBenchmark(ctx, manifestPath, outRoot)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "", "path to benchmark manifest YAML")
	cmd.Flags().StringVarP(&outRoot, "out", "O", "experiments", "directory to write benchmark records under")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
