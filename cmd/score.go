package cmd

import (
	"github.com/spf13/cobra"

	"vscore.dev/pkg/vscore/internal/domain"
	m "vscore.dev/pkg/vscore/internal/model"
)

var scoreOutputFlag string

const scoreLongDescription = `Score every variant in a VEP-format file against a substitution matrix
and write one tab-separated "<id>\t<score>" line per variant, in input
order, after a "# ID\tScore" header.

The output path must name a .tsv file in an existing directory; it is
validated before any input is read. A malformed matrix row, a malformed
variant line, or a symbol missing from the matrix aborts the run without
writing an output file.`

// scoreCmd represents the score command.
var scoreCmd = newScoreCmd()

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <vep-file> <matrix-file>",
		Short: "Score variants against a substitution matrix",
		Long:  scoreLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.Run(cmd.Context(), domain.RunArgs{
				Variants: m.Path(args[0]),
				Matrix:   m.Path(args[1]),
				Output:   m.Path(scoreOutputFlag),
			})
		},
	}

	cmd.Flags().StringVarP(&scoreOutputFlag, outputFlagName, "o", "", "path of the .tsv file to write scores to (required)")
	cobra.CheckErr(cmd.MarkFlagRequired(outputFlagName))

	return cmd
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
