package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/zkcross/launchpad"
)

// BoardMarkdown renders the public offerings board for one snapshot.
func BoardMarkdown(s *launchpad.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Offerings")
	doc.PlainText(fmt.Sprintf("Clock: %s. %d offerings, %d participants.",
		s.Clock, s.TotalOfferings, s.TotalParticipants))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Token", "Status", "Target", "Raised", "Progress", "Investors"},
		Rows:   [][]string{},
	}
	for _, o := range s.Offerings {
		table.Rows = append(table.Rows, []string{
			o.ID,
			string(o.Symbol),
			statusCell(o),
			o.Target.USDT(),
			o.Raised.USDT(),
			o.Progress.String(),
			fmt.Sprintf("%d", o.Investors),
		})
	}
	doc.Table(table)

	return doc.String()
}

// statusCell annotates the status with the schedule context a board
// reader wants at a glance.
func statusCell(o launchpad.Offering) string {
	switch o.Status {
	case launchpad.StatusPending:
		return fmt.Sprintf("%s (opens at %s)", o.Status, o.Start)
	case launchpad.StatusActive:
		if o.OverSubscribed {
			return fmt.Sprintf("%s (oversubscribed)", o.Status)
		}
		return o.Status.String()
	default:
		return o.Status.String()
	}
}
