package seller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tradetalent/backend/internal/respond"
	"github.com/tradetalent/backend/internal/store"
)

// topProfilesLimit caps the /top-seller-profiles listing.
const topProfilesLimit = 10

type Handler struct {
	profiles Store
	log      zerolog.Logger
}

func NewHandler(profiles Store, log zerolog.Logger) *Handler {
	return &Handler{profiles: profiles, log: log}
}

type createRequest struct {
	UserEmail   string   `json:"userEmail" validate:"required"`
	Title       *string  `json:"title"`
	Bio         *string  `json:"bio"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	PricingType *string  `json:"pricingType"`
	Location    *string  `json:"location"`
	Language    *string  `json:"language"`
	Skills      []string `json:"skills"`
	Verified    bool     `json:"verified"`
}

// List handles GET /seller-profiles.
func (h *Handler) List(c echo.Context) error {
	profiles, err := h.profiles.GetAll(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list seller profiles failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, profiles)
}

// Top handles GET /top-seller-profiles, rating-descending.
func (h *Handler) Top(c echo.Context) error {
	profiles, err := h.profiles.GetTop(c.Request().Context(), topProfilesLimit)
	if err != nil {
		h.log.Error().Err(err).Msg("list top seller profiles failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, profiles)
}

// Create handles POST /seller-profile.
func (h *Handler) Create(c echo.Context) error {
	req := new(createRequest)
	if err := c.Bind(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "User email is required")
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	now := time.Now().UTC()
	p := Profile{
		UserEmail:   req.UserEmail,
		Title:       req.Title,
		Bio:         req.Bio,
		Description: req.Description,
		Price:       req.Price,
		PricingType: req.PricingType,
		Location:    req.Location,
		Language:    req.Language,
		Skills:      skills,
		Featured:    false,
		Verified:    req.Verified,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := h.profiles.Create(c.Request().Context(), p)
	if errors.Is(err, store.ErrDuplicate) {
		return respond.Fail(c, http.StatusBadRequest, "SellerProfile already exist for this user")
	}
	if err != nil {
		h.log.Error().Err(err).Str("userEmail", req.UserEmail).Msg("create seller profile failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusCreated, created)
}

// Get handles GET /seller-profile/:userEmail.
func (h *Handler) Get(c echo.Context) error {
	p, err := h.profiles.GetByEmail(c.Request().Context(), c.Param("userEmail"))
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Seller Profile not found for this user")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("get seller profile failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, p)
}

// Update handles PUT /seller-profile/:userEmail with a partial payload.
// The owner key itself is not updatable.
func (h *Handler) Update(c echo.Context) error {
	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	delete(fields, "userEmail")
	fields["updatedAt"] = time.Now().UTC()

	p, err := h.profiles.UpdateByEmail(c.Request().Context(), c.Param("userEmail"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Seller Profile not found for this user")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("update seller profile failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusAccepted, p)
}
