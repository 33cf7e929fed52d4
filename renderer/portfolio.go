package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/zkcross/launchpad"
)

// PortfolioMarkdown renders a participant's portfolio report: stats,
// positions with their projected allocations, and the transaction feed.
func PortfolioMarkdown(s *launchpad.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	if s.Mode != launchpad.Authenticated {
		doc.PlainText("Not connected. Connect a session key to see positions.")
		return doc.String()
	}
	p1, p2 := s.Identity.Strings()
	doc.PlainText(fmt.Sprintf("Participant %s/%s at %s.", p1, p2, s.Clock))

	if s.Stats != nil {
		doc.H2("Overview")
		doc.Table(md.TableSet{
			Header: []string{"Balance", "Invested", "Tokens", "Offerings", "Value", "Unrealized"},
			Rows: [][]string{{
				s.Stats.Balance.USDT(),
				s.Stats.TotalInvested.USDT(),
				s.Stats.TotalTokens.String(),
				fmt.Sprintf("%d", s.Stats.OfferingCount),
				s.Stats.PortfolioValue.USDT(),
				s.Stats.UnrealizedGains.USDT(),
			}},
		})
	}

	if len(s.Positions) > 0 {
		doc.H2("Positions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Offering", "Status", "Invested", "Tokens", "Refund", "Claim"},
			Rows:   [][]string{},
		}
		for _, p := range s.Positions {
			claim := "locked"
			switch {
			case p.TokensWithdrawn:
				claim = "withdrawn"
			case p.CanWithdraw:
				claim = "claimable"
			}
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%s (%s)", p.OfferingID, p.Symbol),
				p.Status.String(),
				p.Invested.USDT(),
				p.Allocation.Tokens.String(),
				p.Allocation.Refund.USDT(),
				claim,
			})
		}
		doc.Table(table)
	}

	if len(s.History) > 0 {
		doc.H2("History")
		table := md.TableSet{
			Header: []string{"Tick", "Kind", "Offering", "Amount", "Tx"},
			Rows:   [][]string{},
		}
		for _, e := range s.History {
			table.Rows = append(table.Rows, []string{
				e.Timestamp.String(),
				string(e.Kind),
				e.OfferingID,
				e.Amount.String(),
				e.TxHash,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
