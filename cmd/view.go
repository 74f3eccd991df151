package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"vscore.dev/pkg/vscore/internal/controller"
	m "vscore.dev/pkg/vscore/internal/model"
)

var viewInteractiveFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <scores.tsv>",
		Short: "View a previously written score file",
		Long:  "View a previously written score file as a table; --interactive opens a scrollable view on a terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(args[0])

			scored, err := resultStore.Read(path)
			if err != nil {
				return err
			}

			var ui controller.UI
			if viewInteractiveFlag && controller.IsTTY(os.Stdout) {
				ui = controller.NewTUI(cmd.OutOrStdout())
			} else {
				ui = controller.NewSimpleUI(cmd)
			}

			return ui.ShowScores(cmd.Context(), path, scored)
		},
	}

	cmd.Flags().BoolVarP(&viewInteractiveFlag, interactiveFlagName, "i", false, "open an interactive scrollable view")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
