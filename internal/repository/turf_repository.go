package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/turf-booking/internal/model"
)

// TurfRepo provides access to the turfs table, including the slots JSON
// column that backs the slot ledger. Ledger mutations go through the Tx
// variants so they commit together with the matching booking row.
type TurfRepo struct{ DB *sql.DB }

func NewTurfRepo(db *sql.DB) *TurfRepo { return &TurfRepo{DB: db} }

const turfColumns = "id,name,city,address,owner_id,owner_name,rent,image,slots,created_at"

// Create inserts a turf with an empty slot ledger and populates the
// generated ID and timestamps on the passed struct.
func (r *TurfRepo) Create(ctx context.Context, t *model.Turf) error {
	if t.Slots == nil {
		t.Slots = model.NewSlotLedger()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO turfs (name, city, address, owner_id, owner_name, rent, image, slots) VALUES (?,?,?,?,?,?,?,?)",
		t.Name, t.City, t.Address, t.OwnerID, t.OwnerName, t.Rent, t.Image, t.Slots)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	// Query back for created_at so the response matches the stored row.
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM turfs WHERE id=?", t.ID).Scan(&t.CreatedAt)
}

// GetByID fetches a turf outside any transaction.
func (r *TurfRepo) GetByID(ctx context.Context, id uint64) (model.Turf, error) {
	return scanTurf(r.DB.QueryRowContext(ctx,
		"SELECT "+turfColumns+" FROM turfs WHERE id=? LIMIT 1", id))
}

// GetByIDForUpdate fetches a turf inside the given transaction with a
// row lock. The allocator and the delete path both lock the turf row so
// the ledger check-then-write serializes against concurrent requests for
// the same turf.
func (r *TurfRepo) GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint64) (model.Turf, error) {
	return scanTurf(tx.QueryRowContext(ctx,
		"SELECT "+turfColumns+" FROM turfs WHERE id=? FOR UPDATE", id))
}

// UpdateSlotsTx writes the ledger back to the turf row within the given
// transaction. Callers must pair it with the booking insert or delete in
// the same transaction; the ledger and the rows must never diverge.
func (r *TurfRepo) UpdateSlotsTx(ctx context.Context, tx *sql.Tx, id uint64, slots model.SlotLedger) error {
	_, err := tx.ExecContext(ctx, "UPDATE turfs SET slots=? WHERE id=?", slots, id)
	return err
}

// List returns turfs newest first. ownerID filters to a single owner
// when non-zero; zero means all turfs. The caller-supplied owner filter
// is trusted as-is (see DESIGN.md).
func (r *TurfRepo) List(ctx context.Context, ownerID uint64) ([]model.Turf, error) {
	q := "SELECT " + turfColumns + " FROM turfs"
	args := []interface{}{}
	if ownerID != 0 {
		q += " WHERE owner_id=?"
		args = append(args, ownerID)
	}
	q += " ORDER BY created_at DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	turfs := make([]model.Turf, 0)
	for rows.Next() {
		var t model.Turf
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.Address, &t.OwnerID, &t.OwnerName,
			&t.Rent, &t.Image, &t.Slots, &t.CreatedAt); err != nil {
			return nil, err
		}
		turfs = append(turfs, t)
	}
	return turfs, rows.Err()
}

func scanTurf(row *sql.Row) (model.Turf, error) {
	var t model.Turf
	err := row.Scan(&t.ID, &t.Name, &t.City, &t.Address, &t.OwnerID, &t.OwnerName,
		&t.Rent, &t.Image, &t.Slots, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Turf{}, ErrTurfNotFound
	}
	return t, err
}
