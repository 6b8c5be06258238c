package reconcile

import (
	"testing"
	"time"
)

func scan(code, name, size string) Scanned {
	return Scanned{Code: code, Name: name, Size: size, ScannedAt: time.Now()}
}

func TestSplitNameSize(t *testing.T) {
	tests := []struct {
		name     string
		wantBase string
		wantSize string
	}{
		{"Amanda ZŁOTY XL", "Amanda ZŁOTY", "XL"},
		{"Amanda ZŁOTY xl", "Amanda ZŁOTY", "xl"},
		{"Bluza 38", "Bluza", "38"},
		// Last token outside the vocabulary: whole label is the name.
		{"Amanda ZŁOTY", "Amanda ZŁOTY", ""},
		{"Kurtka 2024", "Kurtka 2024", ""},
		{"XL", "XL", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		base, size := SplitNameSize(tt.name, DefaultSizes)
		if base != tt.wantBase || size != tt.wantSize {
			t.Errorf("SplitNameSize(%q) = (%q, %q), want (%q, %q)",
				tt.name, base, size, tt.wantBase, tt.wantSize)
		}
	}
}

func TestMatchByBarcodeGroupsBySymbol(t *testing.T) {
	state := []StateItem{
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
	}

	report := Match([]Scanned{scan("590111", "Amanda ZŁOTY XL", "")}, state, nil)

	if len(report.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(report.Groups))
	}
	g := report.Groups[0]
	if g.Symbol != "MAG1" {
		t.Errorf("expected symbol MAG1, got %q", g.Symbol)
	}
	if g.Count != 3 {
		t.Errorf("expected count 3, got %d", g.Count)
	}
	if len(report.Missing) != 0 {
		t.Errorf("expected no missing scans, got %v", report.Missing)
	}
}

func TestMatchByNameAndSize(t *testing.T) {
	state := []StateItem{
		{Barcode: "590222", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "SKLEP", Quantity: 1},
	}

	// Scanner read no barcode and concatenated the size into the name.
	report := Match([]Scanned{scan("", "Amanda ZŁOTY XL", "")}, state, nil)

	if len(report.Groups) != 1 || report.Groups[0].Count != 1 {
		t.Fatalf("expected one single-count group, got %+v", report.Groups)
	}
	if len(report.Missing) != 0 {
		t.Errorf("expected no missing scans, got %v", report.Missing)
	}
}

func TestMatchMissingScan(t *testing.T) {
	state := []StateItem{
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
	}

	report := Match([]Scanned{scan("999999", "Nieznany produkt", "")}, state, nil)

	if len(report.Missing) != 1 {
		t.Fatalf("expected 1 missing scan, got %d", len(report.Missing))
	}
	if report.Missing[0].Code != "999999" {
		t.Errorf("unexpected missing scan: %+v", report.Missing[0])
	}
	// The only state item was never matched, so it is a write-off candidate.
	if len(report.Unscanned) != 1 {
		t.Errorf("expected 1 unscanned state item, got %d", len(report.Unscanned))
	}
}

func TestMatchUnscannedStateFlagged(t *testing.T) {
	state := []StateItem{
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
		{Barcode: "590333", FullName: "Bluza polarowa", Size: "M", Symbol: "MAG1", Quantity: 2},
	}

	report := Match([]Scanned{scan("590111", "Amanda ZŁOTY XL", "")}, state, nil)

	if len(report.Unscanned) != 1 {
		t.Fatalf("expected 1 unscanned item, got %d", len(report.Unscanned))
	}
	if report.Unscanned[0].Barcode != "590333" {
		t.Errorf("unexpected unscanned item: %+v", report.Unscanned[0])
	}
}

func TestMatchDuplicateScans(t *testing.T) {
	state := []StateItem{
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
	}
	scans := []Scanned{
		scan("590111", "Amanda ZŁOTY XL", ""),
		scan("590111", "Amanda ZŁOTY XL", ""),
	}

	report := Match(scans, state, nil)

	if len(report.Duplicates) != 1 {
		t.Fatalf("expected 1 duplicate, got %d", len(report.Duplicates))
	}
	d := report.Duplicates[0]
	if d.ScanCount != 2 || d.Item.Barcode != "590111" {
		t.Errorf("unexpected duplicate: %+v", d)
	}
}

func TestMatchGroupsSortedAcrossSymbols(t *testing.T) {
	state := []StateItem{
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "SKLEP", Quantity: 1},
		{Barcode: "590111", FullName: "Amanda ZŁOTY", Size: "XL", Symbol: "MAG1", Quantity: 1},
	}

	report := Match([]Scanned{scan("590111", "", "")}, state, nil)

	if len(report.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(report.Groups))
	}
	if report.Groups[0].Symbol != "MAG1" || report.Groups[1].Symbol != "SKLEP" {
		t.Errorf("groups not sorted by symbol: %+v", report.Groups)
	}
}

func TestMatchExplicitSizeSkipsHeuristic(t *testing.T) {
	state := []StateItem{
		// The full name here ends in a size token; with an explicit scanned
		// size the name must be used unmodified.
		{Barcode: "", FullName: "Amanda ZŁOTY XL", Size: "M", Symbol: "MAG1", Quantity: 1},
	}

	report := Match([]Scanned{scan("", "Amanda ZŁOTY XL", "M")}, state, nil)

	if len(report.Groups) != 1 || report.Groups[0].Count != 1 {
		t.Errorf("expected explicit-size match, got %+v", report)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	report := Match(nil, nil, nil)
	if len(report.Groups) != 0 || len(report.Missing) != 0 || len(report.Duplicates) != 0 || len(report.Unscanned) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
