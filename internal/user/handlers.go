package user

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

type Handler struct {
	users Store
	log   zerolog.Logger
}

func NewHandler(users Store, log zerolog.Logger) *Handler {
	return &Handler{users: users, log: log}
}

type createRequest struct {
	Name   *string `json:"name"`
	Email  string  `json:"email" validate:"required"`
	Role   *string `json:"role"`
	Avatar *string `json:"avatar"`
}

// Create handles POST /create-user.
func (h *Handler) Create(c echo.Context) error {
	req := new(createRequest)
	if err := c.Bind(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "User email is required")
	}

	now := time.Now().UTC()
	u := User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Avatar:    req.Avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := h.users.Create(c.Request().Context(), u)
	if errors.Is(err, store.ErrDuplicate) {
		return respond.Fail(c, http.StatusBadRequest, "User already exists")
	}
	if err != nil {
		h.log.Error().Err(err).Str("email", req.Email).Msg("create user failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusCreated, created)
}

// Get handles GET /user/:userId.
func (h *Handler) Get(c echo.Context) error {
	id, err := store.ParseID(c.Param("userId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid user id")
	}

	u, err := h.users.GetByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("get user failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, u)
}

// Update handles PUT /user/:userId with a partial payload.
func (h *Handler) Update(c echo.Context) error {
	id, err := store.ParseID(c.Param("userId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid user id")
	}

	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	fields["updatedAt"] = time.Now().UTC()

	u, err := h.users.UpdateByID(c.Request().Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("update user failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusAccepted, u)
}

// Delete handles DELETE /user/:userId.
func (h *Handler) Delete(c echo.Context) error {
	id, err := store.ParseID(c.Param("userId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid user id")
	}

	u, err := h.users.DeleteByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("delete user failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, u)
}
