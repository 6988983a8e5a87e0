package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/ipc"
	md "github.com/nao1215/markdown"
)

// StatusMarkdown renders the current game state: pending purchases, their
// total cost and the IPC remaining afterwards.
func StatusMarkdown(s *ipc.GameState) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Current game state")
	doc.H2("Purchases")

	purchases := s.Purchases()
	if len(purchases) == 0 {
		doc.PlainText("No pending purchases.")
	} else {
		table := md.TableSet{
			Header: []string{"Unit", "Quantity", "Unit cost", "Cost"},
		}
		for _, p := range purchases {
			table.Rows = append(table.Rows, []string{
				p.Unit.Name(),
				strconv.Itoa(p.Quantity),
				strconv.Itoa(p.Unit.Cost()),
				strconv.Itoa(p.Cost()),
			})
		}
		doc.Table(table)
	}

	doc.PlainText(fmt.Sprintf("At a total cost of %d IPC", s.TotalCost()))
	doc.PlainText(fmt.Sprintf("Remaining IPC: %d", s.Remaining()))

	return doc.String()
}
