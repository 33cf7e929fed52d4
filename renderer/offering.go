package renderer

import (
	"fmt"

	"github.com/zkcross/launchpad"
)

// OfferingView is the flattened, display-ready form of one offering
// that the detail templates consume.
type OfferingView struct {
	ID             string
	Name           string
	Symbol         string
	Description    string
	Status         string
	Progress       string
	Target         string
	Raised         string
	Cap            string
	Supply         string
	Distributable  string
	Price          string
	Investors      int64
	Start, End     string
	OverSubscribed bool

	// Allocation preview, present when the caller supplied a stake.
	HasPreview bool
	Invested   string
	Tokens     string
	Allocated  string
	Refund     string
}

// NewOfferingView flattens an offering. A positive investment adds an
// allocation preview section.
func NewOfferingView(o launchpad.Offering, investment launchpad.Amount) OfferingView {
	v := OfferingView{
		ID:             o.ID,
		Name:           o.Name,
		Symbol:         string(o.Symbol),
		Description:    o.Description,
		Status:         o.Status.String(),
		Progress:       o.Progress.String(),
		Target:         o.Target.USDT(),
		Raised:         o.Raised.USDT(),
		Cap:            o.Cap.USDT(),
		Supply:         o.Supply.String(),
		Distributable:  launchpad.DistributableSupply(o.Supply).String(),
		Price:          o.Price.String(),
		Investors:      o.Investors,
		Start:          o.Start.String(),
		End:            o.End.String(),
		OverSubscribed: o.OverSubscribed,
	}
	if o.Cap.IsZero() {
		v.Cap = "none"
	}
	if o.Price.IsZero() {
		v.Price = "n/a"
	} else {
		v.Price = fmt.Sprintf("$%s", o.Price)
	}
	if investment.IsPositive() {
		al := o.Allocation(investment)
		v.HasPreview = true
		v.Invested = investment.USDT()
		v.Tokens = al.Tokens.String()
		v.Allocated = al.AllocatedInvestment.USDT()
		v.Refund = al.Refund.USDT()
	}
	return v
}

// RenderOffering renders the offering detail report to markdown.
func RenderOffering(v OfferingView) string {
	partials := map[string]string{
		"offering_terms":   "offering_terms.md",
		"offering_preview": "offering_preview.md",
	}
	return renderTemplate("offering", "offering.md", partials, v)
}
