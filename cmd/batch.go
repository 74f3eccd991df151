package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vscore.dev/pkg/vscore/internal/domain"
	m "vscore.dev/pkg/vscore/internal/model"
)

var batchMatrixFlag string
var batchOutDirFlag string
var batchParallelFlag int

const batchLongDescription = `Score several VEP-format files against one substitution matrix.

The matrix is loaded once. Each input file <name>.<ext> writes its
scores to <out-dir>/<name>.tsv, and a manifest.yaml summarizing the run
is written last. The output directory must already exist. Any input
failing aborts the whole batch.`

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <vep-file>...",
		Short: "Score several variant files against one matrix",
		Long:  batchLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.RunBatch(cmd.Context(), domain.BatchArgs{
				Variants: parsePaths(args),
				Matrix:   m.Path(batchMatrixFlag),
				OutDir:   m.Path(batchOutDirFlag),
				Parallel: viper.GetInt(batchParallelKey),
			})
		},
	}

	cmd.Flags().StringVar(&batchMatrixFlag, matrixFlagName, "", "substitution matrix file (required)")
	cobra.CheckErr(cmd.MarkFlagRequired(matrixFlagName))

	cmd.Flags().StringVar(&batchOutDirFlag, outDirFlagName, "", "existing directory to write per-file .tsv outputs to (required)")
	cobra.CheckErr(cmd.MarkFlagRequired(outDirFlagName))

	cmd.Flags().IntVarP(&batchParallelFlag, parallelFlagName, "p", viper.GetInt(batchParallelKey), "number of variant files scored in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), batchParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
