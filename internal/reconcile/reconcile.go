// Package reconcile compares scanned inventory against the recorded stock
// state during a stock correction. Matching is pure and in-memory; persisting
// and resolving the resulting correction is the store's job.
package reconcile

import (
	"sort"
	"strings"
	"time"
)

// StateItem is one recorded stock line: a product at a stock location
// (symbol).
type StateItem struct {
	Barcode  string `json:"barcode"`
	FullName string `json:"full_name"`
	Size     string `json:"size,omitempty"`
	Symbol   string `json:"symbol"`
	Quantity int    `json:"quantity"`
}

// Scanned is one entry from a scanning device. Name may be a "Name SIZE"
// concatenation when the label carried no separate size field.
type Scanned struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Size      string    `json:"size,omitempty"`
	Value     float64   `json:"value"`
	ScannedAt time.Time `json:"scanned_at"`
}

// Group collects the state items matched under one stock location. Count is
// the number of matched (scan, state) pairs for the symbol, so a single scan
// hitting three state rows yields a count of 3.
type Group struct {
	Symbol string      `json:"symbol"`
	Count  int         `json:"count"`
	Items  []StateItem `json:"items"`
}

// Duplicate is a state item matched by more than one scan (surplus scans).
type Duplicate struct {
	Item      StateItem `json:"item"`
	ScanCount int       `json:"scan_count"`
}

// Report is the outcome of a reconciliation run.
type Report struct {
	// Groups holds per-location matches, sorted by symbol.
	Groups []Group `json:"groups"`
	// Missing are scans that matched nothing in the recorded state.
	Missing []Scanned `json:"missing"`
	// Duplicates are state items hit by more than one scan.
	Duplicates []Duplicate `json:"duplicates"`
	// Unscanned are recorded state items no scan ever matched; these are the
	// write-off candidates.
	Unscanned []StateItem `json:"unscanned"`
}

// DefaultSizes is the size vocabulary used when splitting concatenated
// "Name SIZE" scan labels. Callers with a real catalog vocabulary should pass
// their own set to Match.
var DefaultSizes = map[string]bool{
	"XS": true, "S": true, "M": true, "L": true,
	"XL": true, "XXL": true, "XXXL": true, "3XL": true,
	"34": true, "36": true, "38": true, "40": true,
	"42": true, "44": true, "46": true,
}

// SplitNameSize splits a concatenated scan label into name and size. The last
// whitespace-delimited token is the size only when it appears in the known
// size set; otherwise the whole label is the name and the size is empty.
func SplitNameSize(name string, sizes map[string]bool) (base, size string) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name, ""
	}
	last := fields[len(fields)-1]
	if !sizes[strings.ToUpper(last)] {
		return name, ""
	}
	return strings.Join(fields[:len(fields)-1], " "), last
}

// Match reconciles scanned items against the recorded state. A scan matches a
// state item by barcode equality, or by (name, size) equality when the
// barcode does not resolve. A nil size set falls back to DefaultSizes.
func Match(scanned []Scanned, state []StateItem, sizes map[string]bool) Report {
	if sizes == nil {
		sizes = DefaultSizes
	}

	// Index state by barcode; name matching stays linear, the lists are
	// small (tens to low hundreds).
	byBarcode := make(map[string][]int, len(state))
	for i, s := range state {
		if s.Barcode != "" {
			byBarcode[s.Barcode] = append(byBarcode[s.Barcode], i)
		}
	}

	groups := make(map[string]*Group)
	seen := make(map[string]map[int]bool) // symbol -> state index present in group
	scanHits := make([]int, len(state))

	var report Report
	for _, scan := range scanned {
		name, size := scan.Name, scan.Size
		if size == "" {
			name, size = SplitNameSize(scan.Name, sizes)
		}

		// Barcode and (name, size) matches are a union, not a fallback: a
		// scan can legitimately hit both kinds of state rows.
		matched := make(map[int]bool)
		var matches []int
		if scan.Code != "" {
			for _, i := range byBarcode[scan.Code] {
				matched[i] = true
				matches = append(matches, i)
			}
		}
		for i, s := range state {
			if !matched[i] && s.FullName == name && s.Size == size {
				matches = append(matches, i)
			}
		}

		if len(matches) == 0 {
			report.Missing = append(report.Missing, scan)
			continue
		}

		for _, i := range matches {
			scanHits[i]++
			sym := state[i].Symbol
			g, ok := groups[sym]
			if !ok {
				g = &Group{Symbol: sym}
				groups[sym] = g
				seen[sym] = make(map[int]bool)
			}
			g.Count++
			if !seen[sym][i] {
				seen[sym][i] = true
				g.Items = append(g.Items, state[i])
			}
		}
	}

	for i, hits := range scanHits {
		switch {
		case hits == 0:
			report.Unscanned = append(report.Unscanned, state[i])
		case hits > 1:
			report.Duplicates = append(report.Duplicates, Duplicate{Item: state[i], ScanCount: hits})
		}
	}

	for _, g := range groups {
		report.Groups = append(report.Groups, *g)
	}
	sort.Slice(report.Groups, func(i, j int) bool {
		return report.Groups[i].Symbol < report.Groups[j].Symbol
	})

	return report
}
