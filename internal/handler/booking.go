package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/turf-booking/internal/model"
	"github.com/iliyamo/turf-booking/internal/queue"
	"github.com/iliyamo/turf-booking/internal/repository"
	queue_publisher "github.com/iliyamo/turf-booking/internal/service"
)

// BookingHandler owns the allocator and lifecycle endpoints. Create and
// Delete each run the ledger mutation and the booking row change inside
// one transaction: the two must commit together or not at all, so no
// reader ever sees a slot without its booking or a booking without its
// slot.
type BookingHandler struct {
	DB       *sql.DB // shared store handle, used to open transactions
	Users    *repository.UserRepo
	Turfs    *repository.TurfRepo
	Bookings *repository.BookingRepo
}

func NewBookingHandler(db *sql.DB, users *repository.UserRepo, turfs *repository.TurfRepo, bookings *repository.BookingRepo) *BookingHandler {
	if db == nil || users == nil || turfs == nil || bookings == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{DB: db, Users: users, Turfs: turfs, Bookings: bookings}
}

type createBookingReq struct {
	TurfID        uint64  `json:"turfId" validate:"required"`
	UserEmail     string  `json:"userEmail" validate:"required"`
	Date          string  `json:"date" validate:"required"` // DD/MM/YYYY, used verbatim as ledger key
	Slot          string  `json:"slot" validate:"required"` // "<start>-<end>"
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	TransactionID *string `json:"transactionId"`
}

// Create handles POST /bookings. Checks run in contract order: user,
// turf, slot parse, ledger re-check. The turf row is locked FOR UPDATE
// before the re-check so the check-then-act is serialized per turf; a
// client that booked against a stale availability view gets a 409 here
// rather than a double booking.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx := c.Request().Context()

	user, err := h.Users.GetByEmail(ctx, req.UserEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found, please register first"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	turf, err := h.Turfs.GetByIDForUpdate(ctx, tx, req.TurfID)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	iv, err := model.ParseSlot(req.Slot)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot format"})
	}

	// Authoritative availability check, inside the transaction with the
	// turf row locked.
	if turf.Slots.IsBooked(req.Date, iv) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "slot already booked"})
	}

	turf.Slots.Add(req.Date, iv)
	if err := h.Turfs.UpdateSlotsTx(ctx, tx, turf.ID, turf.Slots); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update slots"})
	}

	booking := &model.Booking{
		UserID:        user.ID,
		TurfID:        turf.ID,
		OwnerID:       turf.OwnerID,
		OwnerName:     turf.OwnerName,
		Date:          req.Date,
		Slot:          iv.Label(),
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        model.StatusPending,
	}
	if err := h.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /bookings?ownerId=. Without ownerId it returns every
// booking (the admin dashboard feed); with ownerId it narrows to one
// owner's turfs. Rows come back joined with their turf and user.
func (h *BookingHandler) List(c echo.Context) error {
	var ownerID uint64
	if s := c.QueryParam("ownerId"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ownerId"})
		}
		ownerID = n
	}
	bookings, err := h.Bookings.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByUser handles GET /bookings/user/:email, the personal history
// page. Unknown emails are a 404, matching the user-first check order
// of the allocator.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	email := c.Param("email")
	ctx := c.Request().Context()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	bookings, err := h.Bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /bookings/:id/status. It is a pure row
// mutation: the ledger is untouched, so a DECLINED booking keeps its
// slot until someone deletes it. Confirmations additionally emit a
// booking.confirmed event for the notification log.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	booking, err := h.Bookings.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking status"})
	}

	if booking.Status == model.StatusConfirmed {
		go h.publishConfirmed(booking)
	}
	return c.JSON(http.StatusOK, booking)
}

// publishConfirmed enriches and publishes the confirmation event. It
// runs detached from the request; a broker or lookup failure only costs
// the log line, never the response.
func (h *BookingHandler) publishConfirmed(b model.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	turf, err := h.Turfs.GetByID(ctx, b.TurfID)
	if err != nil {
		return
	}
	user, err := h.Users.GetByID(ctx, b.UserID)
	if err != nil {
		return
	}
	_ = queue_publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		EventID:       uuid.NewString(),
		BookingID:     b.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		TurfID:        turf.ID,
		TurfName:      turf.Name,
		City:          turf.City,
		OwnerID:       turf.OwnerID,
		OwnerName:     turf.OwnerName,
		Date:          b.Date,
		Slot:          b.Slot,
		Rent:          turf.Rent,
		PaymentMethod: b.PaymentMethod,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Delete handles DELETE /bookings/:id, the only operation that frees a
// ledger slot. The stored slot label is re-parsed and the matching
// interval stripped from the turf's ledger in the same transaction that
// removes the row.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx := c.Request().Context()
	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := h.Bookings.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	turf, err := h.Turfs.GetByIDForUpdate(ctx, tx, booking.TurfID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	iv, err := model.ParseSlot(booking.Slot)
	if err != nil {
		// Stored labels are written by the allocator and always parse;
		// anything else means the row was tampered with.
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt slot label"})
	}

	turf.Slots.Remove(booking.Date, iv)
	if err := h.Turfs.UpdateSlotsTx(ctx, tx, turf.ID, turf.Slots); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update slots"})
	}
	if err := h.Bookings.DeleteTx(ctx, tx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted and slot freed"})
}
