// Package search filters customer records against a free-text query.
package search

import (
	"strings"

	"github.com/Iron-Ham/custsearch/internal/customer"
)

// DefaultLimit is the maximum number of matches shown in the results table.
const DefaultLimit = 50

// Result holds every record that matched a query, in dataset order.
type Result struct {
	Query   string
	Matches []customer.Record
}

// Total returns the untruncated match count.
func (r Result) Total() int {
	return len(r.Matches)
}

// Displayed returns at most limit matches. A limit <= 0 uses DefaultLimit.
func (r Result) Displayed(limit int) []customer.Record {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(r.Matches) <= limit {
		return r.Matches
	}
	return r.Matches[:limit]
}

// Truncated reports whether Displayed(limit) drops any matches.
func (r Result) Truncated(limit int) bool {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return len(r.Matches) > limit
}

// Filter returns the records of ds that match query, preserving order.
// An empty query matches nothing.
func Filter(ds customer.Dataset, query string) Result {
	res := Result{Query: query}
	if query == "" {
		return res
	}

	needle := strings.ToLower(query)
	for _, rec := range ds {
		if matchLower(rec, needle) {
			res.Matches = append(res.Matches, rec)
		}
	}
	return res
}

// Match reports whether the record's id, name or NIC contains query,
// ignoring case. An empty query never matches.
func Match(rec customer.Record, query string) bool {
	if query == "" {
		return false
	}
	return matchLower(rec, strings.ToLower(query))
}

func matchLower(rec customer.Record, needle string) bool {
	return containsFold(rec.ID, needle) ||
		containsFold(rec.Name, needle) ||
		containsFold(rec.NIC, needle)
}

// containsFold is false for absent values so a missing field never matches.
func containsFold(f customer.Field, needle string) bool {
	if !f.Truthy() {
		return false
	}
	return strings.Contains(strings.ToLower(f.String()), needle)
}
