package library

// Policy is the static lookup table for borrow durations, borrow limits and
// fine rates. It is built once at startup and read-only afterwards.
type Policy struct {
	borrowDuration map[Role]int
	borrowLimit    map[Role]int
	fineRates      map[ItemType]float64
}

// DefaultPolicy returns the standard circulation rules.
func DefaultPolicy() *Policy {
	return &Policy{
		borrowDuration: map[Role]int{
			RoleStudent:   14,
			RoleFaculty:   30,
			RoleLibrarian: 60,
		},
		borrowLimit: map[Role]int{
			RoleStudent:   5,
			RoleFaculty:   10,
			RoleLibrarian: 15,
		},
		fineRates: map[ItemType]float64{
			ItemBook:     0.50,
			ItemMagazine: 0.25,
			ItemJournal:  0.75,
		},
	}
}

// NewPolicy builds a policy from explicit tables, falling back to the
// defaults for any missing entry. Used when durations, limits or rates are
// overridden from configuration.
func NewPolicy(durations, limits map[Role]int, rates map[ItemType]float64) *Policy {
	p := DefaultPolicy()
	for role, days := range durations {
		if days > 0 {
			p.borrowDuration[role] = days
		}
	}
	for role, limit := range limits {
		if limit > 0 {
			p.borrowLimit[role] = limit
		}
	}
	for typ, rate := range rates {
		if rate > 0 {
			p.fineRates[typ] = rate
		}
	}
	return p
}

// BorrowDuration returns the borrow period in days for a role.
func (p *Policy) BorrowDuration(role Role) int { return p.borrowDuration[role] }

// BorrowLimit returns the maximum number of simultaneously borrowed items
// for a role.
func (p *Policy) BorrowLimit(role Role) int { return p.borrowLimit[role] }

// FineRate returns the fine charged per full overdue day for an item type.
func (p *Policy) FineRate(typ ItemType) float64 { return p.fineRates[typ] }
