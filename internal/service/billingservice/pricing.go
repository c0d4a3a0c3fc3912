package billingservice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Pricing holds the configured tariff: per-cup rates for members and
// guests plus the fixed monthly machine rent.
type Pricing struct {
	memberRate decimal.Decimal
	guestRate  decimal.Decimal
	rent       decimal.Decimal
}

func NewPricing(memberRate, guestRate, rent string) (*Pricing, error) {
	member, err := decimal.NewFromString(memberRate)
	if err != nil {
		return nil, fmt.Errorf("invalid member cup rate %q: %w", memberRate, err)
	}
	guest, err := decimal.NewFromString(guestRate)
	if err != nil {
		return nil, fmt.Errorf("invalid guest cup rate %q: %w", guestRate, err)
	}
	monthlyRent, err := decimal.NewFromString(rent)
	if err != nil {
		return nil, fmt.Errorf("invalid monthly rent %q: %w", rent, err)
	}
	return &Pricing{
		memberRate: quantize(member),
		guestRate:  quantize(guest),
		rent:       quantize(monthlyRent),
	}, nil
}

// CupCost prices a month's cups: subsidized member rate for members, flat
// guest rate otherwise.
func (p *Pricing) CupCost(member bool, count int) decimal.Decimal {
	rate := p.guestRate
	if member {
		rate = p.memberRate
	}
	return quantize(rate.Mul(decimal.NewFromInt(int64(count))))
}

// RentShare splits the monthly rent between the active members. Zero when
// there are no members.
func (p *Pricing) RentShare(activeMembers int) decimal.Decimal {
	if activeMembers < 1 {
		return decimal.Zero
	}
	return quantize(p.rent.Div(decimal.NewFromInt(int64(activeMembers))))
}

func (p *Pricing) Rent() decimal.Decimal {
	return p.rent
}

// quantize rounds to two decimals, half up. Applied at every combination
// step, never only at output.
func quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
