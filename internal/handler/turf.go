package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/turf-booking/internal/model"
	"github.com/iliyamo/turf-booking/internal/repository"
)

// TurfHandler serves turf creation and the public turf listing.
type TurfHandler struct {
	Turfs    *repository.TurfRepo
	Bookings *repository.BookingRepo
}

func NewTurfHandler(turfs *repository.TurfRepo, bookings *repository.BookingRepo) *TurfHandler {
	if turfs == nil || bookings == nil {
		panic("nil repository passed to NewTurfHandler")
	}
	return &TurfHandler{Turfs: turfs, Bookings: bookings}
}

type createTurfReq struct {
	Name      string  `json:"name" validate:"required"`
	City      string  `json:"city" validate:"required"`
	Address   string  `json:"address"`
	OwnerID   uint64  `json:"ownerId"`
	OwnerName string  `json:"ownerName"`
	Rent      float64 `json:"rent" validate:"required"`
	Image     string  `json:"image"`
}

// Create handles POST /turfs. The new turf starts with an empty slot
// ledger; only bookings ever mutate it afterwards.
func (h *TurfHandler) Create(c echo.Context) error {
	var req createTurfReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	turf := &model.Turf{
		Name:      req.Name,
		City:      req.City,
		Address:   req.Address,
		OwnerID:   req.OwnerID,
		OwnerName: req.OwnerName,
		Rent:      req.Rent,
		Image:     req.Image,
		Slots:     model.NewSlotLedger(),
	}
	if err := h.Turfs.Create(c.Request().Context(), turf); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create turf"})
	}
	return c.JSON(http.StatusCreated, turf)
}

// List handles GET /turfs?ownerId=&include=bookings. The ownerId filter
// is taken at face value; see DESIGN.md on the missing server-side
// ownership check. include=bookings attaches each turf's bookings the
// way the owner dashboard expects.
func (h *TurfHandler) List(c echo.Context) error {
	var ownerID uint64
	if s := c.QueryParam("ownerId"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ownerId"})
		}
		ownerID = n
	}

	ctx := c.Request().Context()
	turfs, err := h.Turfs.List(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch turfs"})
	}

	if c.QueryParam("include") == "bookings" && len(turfs) > 0 {
		ids := make([]uint64, 0, len(turfs))
		for _, t := range turfs {
			ids = append(ids, t.ID)
		}
		byTurf, err := h.Bookings.ListByTurfIDs(ctx, ids)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch bookings"})
		}
		for i := range turfs {
			if bs, ok := byTurf[turfs[i].ID]; ok {
				turfs[i].Bookings = bs
			}
		}
	}
	return c.JSON(http.StatusOK, turfs)
}
