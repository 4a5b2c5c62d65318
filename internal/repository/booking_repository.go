package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/turf-booking/internal/model"
)

// BookingRepo provides access to the bookings table. Creation and
// deletion happen through Tx variants because both must commit together
// with the turf's slot ledger update; status changes touch only the
// booking row and run outside any explicit transaction.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,user_id,turf_id,owner_id,owner_name,date,slot,payment_method,transaction_id,status,created_at"

// CreateTx inserts a booking within the allocator's transaction and
// populates the generated ID, status default and timestamp on the passed
// struct. The caller commits or rolls back.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, turf_id, owner_id, owner_name, date, slot, payment_method, transaction_id, status)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.UserID, b.TurfID, b.OwnerID, b.OwnerName, b.Date, b.Slot,
		b.PaymentMethod, b.TransactionID, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return tx.QueryRowContext(ctx,
		"SELECT created_at FROM bookings WHERE id=?", b.ID).Scan(&b.CreatedAt)
}

// GetByID fetches a booking by id. Returns ErrBookingNotFound when the
// row does not exist.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	return scanBooking(r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id))
}

// GetByIDTx is GetByID inside the delete transaction, so the row read
// and the subsequent delete see the same state.
func (r *BookingRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Booking, error) {
	return scanBooking(tx.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id))
}

// UpdateStatus sets the booking's status and returns the updated row.
// Status validation happens in the handler; this method trusts its
// input. Returns ErrBookingNotFound when the id matches nothing.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Booking, error) {
	res, err := r.DB.ExecContext(ctx, "UPDATE bookings SET status=? WHERE id=?", status, id)
	if err != nil {
		return model.Booking{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Zero rows can mean missing or unchanged; resolve via lookup.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Booking{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// DeleteTx removes the booking row within the lifecycle transaction.
// The matching ledger update runs in the same transaction via
// TurfRepo.UpdateSlotsTx.
func (r *BookingRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListByOwner returns bookings newest first with the turf and user rows
// joined in, for the owner dashboard. ownerID zero means no filter (the
// admin view lists everything).
func (r *BookingRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Booking, error) {
	q := `SELECT b.id, b.user_id, b.turf_id, b.owner_id, b.owner_name, b.date, b.slot,
	             b.payment_method, b.transaction_id, b.status, b.created_at,
	             t.id, t.name, t.city, t.address, t.owner_id, t.owner_name, t.rent, t.image, t.slots, t.created_at,
	             u.id, u.email, u.name, u.role, u.created_at, u.updated_at
	      FROM bookings b
	      JOIN turfs t ON t.id = b.turf_id
	      JOIN users u ON u.id = b.user_id`
	args := []interface{}{}
	if ownerID != 0 {
		q += " WHERE b.owner_id=?"
		args = append(args, ownerID)
	}
	q += " ORDER BY b.created_at DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var t model.Turf
		var u model.User
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.TurfID, &b.OwnerID, &b.OwnerName, &b.Date, &b.Slot,
			&b.PaymentMethod, &b.TransactionID, &b.Status, &b.CreatedAt,
			&t.ID, &t.Name, &t.City, &t.Address, &t.OwnerID, &t.OwnerName, &t.Rent, &t.Image, &t.Slots, &t.CreatedAt,
			&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		b.Turf = &t
		b.User = &u
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListByUser returns a user's own bookings newest first with the turf
// joined in, for the personal history page.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.turf_id, b.owner_id, b.owner_name, b.date, b.slot,
	                  b.payment_method, b.transaction_id, b.status, b.created_at,
	                  t.id, t.name, t.city, t.address, t.owner_id, t.owner_name, t.rent, t.image, t.slots, t.created_at
	           FROM bookings b
	           JOIN turfs t ON t.id = b.turf_id
	           WHERE b.user_id=?
	           ORDER BY b.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var t model.Turf
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.TurfID, &b.OwnerID, &b.OwnerName, &b.Date, &b.Slot,
			&b.PaymentMethod, &b.TransactionID, &b.Status, &b.CreatedAt,
			&t.ID, &t.Name, &t.City, &t.Address, &t.OwnerID, &t.OwnerName, &t.Rent, &t.Image, &t.Slots, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		b.Turf = &t
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListByTurfIDs returns bookings for the given turfs keyed by turf id,
// used by the turf listing's include=bookings mode. One IN query covers
// every turf on the page.
func (r *BookingRepo) ListByTurfIDs(ctx context.Context, turfIDs []uint64) (map[uint64][]model.Booking, error) {
	out := make(map[uint64][]model.Booking)
	if len(turfIDs) == 0 {
		return out, nil
	}
	placeholders := make([]string, 0, len(turfIDs))
	args := make([]interface{}, 0, len(turfIDs))
	for _, id := range turfIDs {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	q := "SELECT " + prefixColumns("b", bookingColumns) + ` FROM bookings b
	      WHERE b.turf_id IN (` + strings.Join(placeholders, ",") + `)
	      ORDER BY b.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.TurfID, &b.OwnerID, &b.OwnerName, &b.Date, &b.Slot,
			&b.PaymentMethod, &b.TransactionID, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out[b.TurfID] = append(out[b.TurfID], b)
	}
	return out, rows.Err()
}

func scanBooking(row *sql.Row) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.TurfID, &b.OwnerID, &b.OwnerName, &b.Date, &b.Slot,
		&b.PaymentMethod, &b.TransactionID, &b.Status, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// prefixColumns rewrites "a,b,c" into "p.a, p.b, p.c" for aliased queries.
func prefixColumns(alias, cols string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
