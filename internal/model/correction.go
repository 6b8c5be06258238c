package model

import "time"

// Correction is one stock-correction session: a batch of scanned items
// reconciled against the recorded stock state, reviewed manually afterwards.
type Correction struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	CreatedBy *int64           `json:"created_by,omitempty"`
	Items     []CorrectionItem `json:"items,omitempty"`
}

// CorrectionItem is one reconciled line of a correction session.
type CorrectionItem struct {
	ID           int64   `json:"id"`
	CorrectionID string  `json:"correction_id"`
	Barcode      string  `json:"barcode"`
	Name         string  `json:"name"`
	Size         string  `json:"size,omitempty"`
	Symbol       string  `json:"symbol,omitempty"`
	Class        string  `json:"class"`
	Matches      int     `json:"matches"`
	Value        float64 `json:"value"`
}

// Correction statuses.
const (
	CorrectionPending  = "pending"
	CorrectionResolved = "resolved"
	CorrectionIgnored  = "ignored"
)

// Correction item classifications.
const (
	CorrectionClassMatched   = "matched"
	CorrectionClassMissing   = "missing"
	CorrectionClassDuplicate = "duplicate"
	CorrectionClassUnscanned = "unscanned"
)

// CorrectionTransitionAllowed reports whether a correction may move from one
// status to another. Pending can be resolved or ignored; both end states can
// be reopened (undo), and nothing else is allowed.
func CorrectionTransitionAllowed(from, to string) bool {
	switch from {
	case CorrectionPending:
		return to == CorrectionResolved || to == CorrectionIgnored
	case CorrectionResolved, CorrectionIgnored:
		return to == CorrectionPending
	}
	return false
}
