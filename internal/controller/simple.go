package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "vscore.dev/pkg/vscore/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ShowScores renders the scored variants as a plain table.
func (s *SimpleUI) ShowScores(ctx context.Context, source m.Path, scored []m.ScoredVariant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("%s\n\n%s", source, renderScoreTable(scored))

	return nil
}

func renderScoreTable(scored []m.ScoredVariant) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"ID", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, sv := range scored {
		table.Append([]string{sv.ID, strconv.Itoa(sv.Score)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(scored))})
	table.Render()

	return buf.String()
}
