package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering applied to query results.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
	SortStudents  SortKey = "students"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
)

// SortKeys lists every sort key in display order.
var SortKeys = []SortKey{
	SortRelevance,
	SortRating,
	SortNewest,
	SortStudents,
	SortPriceLow,
	SortPriceHigh,
}

// Label returns the human-readable name of the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortRating:
		return "Highest Rated"
	case SortNewest:
		return "Newest"
	case SortStudents:
		return "Most Students"
	case SortPriceLow:
		return "Price: Low→High"
	case SortPriceHigh:
		return "Price: High→Low"
	default:
		return "Relevance"
	}
}

// PriceFilter selects a price tier.
type PriceFilter string

const (
	PriceAll  PriceFilter = "all"
	PriceFree PriceFilter = "free"
	PricePaid PriceFilter = "paid"
)

// Criteria describes one catalog query. The zero value matches everything in
// input order; DefaultCriteria spells the defaults out explicitly.
type Criteria struct {
	Category       Category
	Price          PriceFilter
	Level          Level
	BestsellerOnly bool
	Search         string
	Sort           SortKey
}

// DefaultCriteria returns criteria that pass every course through unchanged.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: CategoryAll,
		Price:    PriceAll,
		Level:    LevelAll,
		Sort:     SortRelevance,
	}
}

// Query filters and sorts courses according to crit. It never mutates the
// input slice and always returns a fresh slice. Filters are AND-combined;
// unknown category, level, price, or sort values act as no-ops rather than
// errors. Sorting is stable: ties keep their original relative order.
func Query(courses []Course, crit Criteria) []Course {
	out := make([]Course, 0, len(courses))
	search := strings.ToLower(strings.TrimSpace(crit.Search))

	for _, c := range courses {
		if !matchCategory(c, crit.Category) {
			continue
		}
		if crit.BestsellerOnly && !c.IsBestseller {
			continue
		}
		if !matchLevel(c, crit.Level) {
			continue
		}
		if !matchPrice(c, crit.Price) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(c.Title + c.Instructor + string(c.Category))
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, c)
	}

	if less := comparator(crit.Sort); less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func matchCategory(c Course, filter Category) bool {
	if filter == "" || filter == CategoryAll || !knownCategory(filter) {
		return true
	}
	return c.Category == filter
}

func matchLevel(c Course, filter Level) bool {
	if filter == "" || filter == LevelAll || !knownLevel(filter) {
		return true
	}
	return c.Level == filter
}

func matchPrice(c Course, filter PriceFilter) bool {
	switch filter {
	case PriceFree:
		return c.Price == 0
	case PricePaid:
		return c.Price != 0
	default:
		return true
	}
}

func knownCategory(cat Category) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func knownLevel(lvl Level) bool {
	for _, l := range Levels {
		if l == lvl {
			return true
		}
	}
	return false
}

// comparator returns the strict-less function for the sort key, or nil when
// input order should be preserved (relevance and anything unrecognised).
func comparator(key SortKey) func(a, b Course) bool {
	switch key {
	case SortRating:
		return func(a, b Course) bool { return a.Rating > b.Rating }
	case SortNewest:
		return func(a, b Course) bool { return a.ID > b.ID }
	case SortStudents:
		return func(a, b Course) bool { return a.StudentCount > b.StudentCount }
	case SortPriceLow:
		return func(a, b Course) bool { return a.Price < b.Price }
	case SortPriceHigh:
		return func(a, b Course) bool { return a.Price > b.Price }
	default:
		return nil
	}
}
