package models

// Filter is the transient filter state derived from the request; zero
// values mean "not set" and always match.
type Filter struct {
	Category string
	Brand    string
	MaxPrice int
}

func (f Filter) Matches(p *Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.MaxPrice > 0 && p.Price.Int() > f.MaxPrice {
		return false
	}
	return true
}
