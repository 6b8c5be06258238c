package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/reconcile"
)

// CreateCorrection persists a reconciliation report as a new pending
// correction session and returns it.
func CreateCorrection(ctx context.Context, db *sql.DB, report reconcile.Report, createdBy *int64) (*model.Correction, error) {
	id := uuid.NewString()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO corrections (id, status, created_by) VALUES (?, ?, ?)`,
		id, model.CorrectionPending, createdBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating correction: %w", err)
	}

	insert := func(barcode, name, size, symbol, class string, matches int, value float64) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO correction_items (correction_id, barcode, name, size, symbol, class, matches, value)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, barcode, name, size, symbol, class, matches, value,
		)
		return err
	}

	for _, g := range report.Groups {
		for _, item := range g.Items {
			if err := insert(item.Barcode, item.FullName, item.Size, g.Symbol,
				model.CorrectionClassMatched, g.Count, 0); err != nil {
				return nil, fmt.Errorf("inserting matched item: %w", err)
			}
		}
	}
	for _, scan := range report.Missing {
		if err := insert(scan.Code, scan.Name, scan.Size, "",
			model.CorrectionClassMissing, 0, scan.Value); err != nil {
			return nil, fmt.Errorf("inserting missing item: %w", err)
		}
	}
	for _, d := range report.Duplicates {
		if err := insert(d.Item.Barcode, d.Item.FullName, d.Item.Size, d.Item.Symbol,
			model.CorrectionClassDuplicate, d.ScanCount, 0); err != nil {
			return nil, fmt.Errorf("inserting duplicate item: %w", err)
		}
	}
	for _, item := range report.Unscanned {
		if err := insert(item.Barcode, item.FullName, item.Size, item.Symbol,
			model.CorrectionClassUnscanned, 0, 0); err != nil {
			return nil, fmt.Errorf("inserting unscanned item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing correction: %w", err)
	}

	return GetCorrection(ctx, db, id)
}

// GetCorrection returns a correction with its items.
func GetCorrection(ctx context.Context, db *sql.DB, id string) (*model.Correction, error) {
	c := &model.Correction{}
	err := db.QueryRowContext(ctx,
		`SELECT id, status, created_at, created_by FROM corrections WHERE id = ?`, id,
	).Scan(&c.ID, &c.Status, &c.CreatedAt, &c.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting correction: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, correction_id, barcode, name, size, symbol, class, matches, value
		 FROM correction_items WHERE correction_id = ? ORDER BY id`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting correction items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.CorrectionItem
		if err := rows.Scan(&item.ID, &item.CorrectionID, &item.Barcode, &item.Name,
			&item.Size, &item.Symbol, &item.Class, &item.Matches, &item.Value); err != nil {
			return nil, fmt.Errorf("scanning correction item: %w", err)
		}
		c.Items = append(c.Items, item)
	}
	return c, rows.Err()
}

// ListCorrections returns all corrections without items, newest first.
func ListCorrections(ctx context.Context, db *sql.DB, status string) ([]model.Correction, error) {
	var rows *sql.Rows
	var err error

	if status != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, status, created_at, created_by FROM corrections
			 WHERE status = ? ORDER BY created_at DESC`, status,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, status, created_at, created_by FROM corrections
			 ORDER BY created_at DESC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing corrections: %w", err)
	}
	defer rows.Close()

	var corrections []model.Correction
	for rows.Next() {
		var c model.Correction
		if err := rows.Scan(&c.ID, &c.Status, &c.CreatedAt, &c.CreatedBy); err != nil {
			return nil, fmt.Errorf("scanning correction: %w", err)
		}
		corrections = append(corrections, c)
	}
	return corrections, rows.Err()
}

// SetCorrectionStatus moves a correction between statuses, enforcing the
// transition rules. Resolving applies the write-offs; reopening a resolved
// correction rolls them back. Ignoring changes no stock.
func SetCorrectionStatus(ctx context.Context, db *sql.DB, id, newStatus string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM corrections WHERE id = ?`, id,
	).Scan(&current)
	if err == sql.ErrNoRows {
		return fmt.Errorf("correction not found")
	}
	if err != nil {
		return fmt.Errorf("checking correction status: %w", err)
	}

	if !model.CorrectionTransitionAllowed(current, newStatus) {
		return fmt.Errorf("cannot change correction status from %s to %s", current, newStatus)
	}

	switch {
	case newStatus == model.CorrectionResolved:
		if err := applyWriteOffs(ctx, tx, id, -1); err != nil {
			return err
		}
	case current == model.CorrectionResolved && newStatus == model.CorrectionPending:
		if err := applyWriteOffs(ctx, tx, id, +1); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE corrections SET status = ? WHERE id = ?`, newStatus, id,
	)
	if err != nil {
		return fmt.Errorf("updating correction status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing status change: %w", err)
	}
	return nil
}

// applyWriteOffs adjusts stock by direction (-1 write-off, +1 rollback) for
// every unscanned item of a correction. Items resolve to products by barcode
// first, then by (name, size).
func applyWriteOffs(ctx context.Context, tx *sql.Tx, correctionID string, direction int) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT barcode, name, size, symbol FROM correction_items
		 WHERE correction_id = ? AND class = ?`,
		correctionID, model.CorrectionClassUnscanned,
	)
	if err != nil {
		return fmt.Errorf("loading write-off items: %w", err)
	}

	type writeOff struct {
		barcode, name, size, symbol string
	}
	var items []writeOff
	for rows.Next() {
		var w writeOff
		if err := rows.Scan(&w.barcode, &w.name, &w.size, &w.symbol); err != nil {
			rows.Close()
			return fmt.Errorf("scanning write-off item: %w", err)
		}
		items = append(items, w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("loading write-off items: %w", err)
	}

	for _, w := range items {
		var productID int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM products WHERE barcode = ? AND barcode != '' AND deleted_at IS NULL`,
			w.barcode,
		).Scan(&productID)
		if err == sql.ErrNoRows {
			err = tx.QueryRowContext(ctx,
				`SELECT id FROM products WHERE name = ? AND size = ? AND deleted_at IS NULL`,
				w.name, w.size,
			).Scan(&productID)
		}
		if err == sql.ErrNoRows {
			return fmt.Errorf("no product for correction item %q %q", w.barcode, w.name)
		}
		if err != nil {
			return fmt.Errorf("resolving correction item product: %w", err)
		}

		if err := adjustStockTx(ctx, tx, productID, w.symbol, direction); err != nil {
			return err
		}
	}
	return nil
}
