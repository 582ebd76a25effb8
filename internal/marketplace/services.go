package marketplace

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

// featuredServicesLimit caps the /featured-services listing.
const featuredServicesLimit = 6

type ServiceHandler struct {
	services ServiceStore
	log      zerolog.Logger
}

func NewServiceHandler(services ServiceStore, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{services: services, log: log}
}

type createServiceRequest struct {
	SellerEmail string   `json:"sellerEmail" validate:"required"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Pricing     *string  `json:"pricing"`
	Images      []string `json:"images"`
}

// List handles GET /services.
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.services.GetAll(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list services failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, services)
}

// Featured handles GET /featured-services.
func (h *ServiceHandler) Featured(c echo.Context) error {
	services, err := h.services.GetFeatured(c.Request().Context(), featuredServicesLimit)
	if err != nil {
		h.log.Error().Err(err).Msg("list featured services failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, services)
}

// Mine handles GET /my-services/:sellerEmail.
func (h *ServiceHandler) Mine(c echo.Context) error {
	services, err := h.services.GetBySeller(c.Request().Context(), c.Param("sellerEmail"))
	if err != nil {
		h.log.Error().Err(err).Msg("list seller services failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, services)
}

// Create handles POST /services.
func (h *ServiceHandler) Create(c echo.Context) error {
	req := new(createServiceRequest)
	if err := c.Bind(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Seller email is required")
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	s := Service{
		SellerEmail: req.SellerEmail,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Pricing:     req.Pricing,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := h.services.Create(c.Request().Context(), s)
	if err != nil {
		h.log.Error().Err(err).Str("sellerEmail", req.SellerEmail).Msg("create service failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusCreated, created)
}

// Get handles GET /services/:serviceId.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := store.ParseID(c.Param("serviceId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid service id")
	}

	s, err := h.services.GetByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Service not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("get service failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, s)
}

// Update handles PUT /services/:serviceId with a partial payload.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := store.ParseID(c.Param("serviceId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid service id")
	}

	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	fields["updatedAt"] = time.Now().UTC()

	s, err := h.services.UpdateByID(c.Request().Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Service not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("update service failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusAccepted, s)
}

// Delete handles DELETE /services/:serviceId.
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := store.ParseID(c.Param("serviceId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid service id")
	}

	s, err := h.services.DeleteByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Service not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("delete service failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, s)
}
