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

// defaultOrderStatus is the status every new order starts in.
const defaultOrderStatus = "pending"

type OrderHandler struct {
	orders OrderStore
	log    zerolog.Logger
}

func NewOrderHandler(orders OrderStore, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

type createOrderRequest struct {
	BuyerEmail  string   `json:"buyerEmail"`
	SellerEmail string   `json:"sellerEmail"`
	ServiceID   string   `json:"serviceId" validate:"required"`
	Package     *string  `json:"package"`
	Price       *float64 `json:"price"`
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.GetAll(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list orders failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, orders)
}

// BySeller handles GET /seller-orders/:sellerEmail.
func (h *OrderHandler) BySeller(c echo.Context) error {
	orders, err := h.orders.GetBySeller(c.Request().Context(), c.Param("sellerEmail"))
	if err != nil {
		h.log.Error().Err(err).Msg("list seller orders failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, orders)
}

// ByBuyer handles GET /buyer-orders/:buyerEmail.
func (h *OrderHandler) ByBuyer(c echo.Context) error {
	orders, err := h.orders.GetByBuyer(c.Request().Context(), c.Param("buyerEmail"))
	if err != nil {
		h.log.Error().Err(err).Msg("list buyer orders failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, orders)
}

// Create handles POST /create-order. The service reference is coerced to an
// ObjectID before writing; existence of the referenced entities is advisory
// and not checked.
func (h *OrderHandler) Create(c echo.Context) error {
	req := new(createOrderRequest)
	if err := c.Bind(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Service id is required")
	}

	serviceID, err := store.ParseID(req.ServiceID)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid service id")
	}

	now := time.Now().UTC()
	o := Order{
		BuyerEmail:  req.BuyerEmail,
		SellerEmail: req.SellerEmail,
		ServiceID:   serviceID,
		Package:     req.Package,
		Price:       req.Price,
		Status:      defaultOrderStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := h.orders.Create(c.Request().Context(), o)
	if err != nil {
		h.log.Error().Err(err).Msg("create order failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusCreated, created)
}

// Get handles GET /orders/:orderId.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := store.ParseID(c.Param("orderId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid order id")
	}

	o, err := h.orders.GetByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("get order failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, o)
}

// Update handles PUT /orders/:orderId with a partial payload. A serviceId in
// the payload is coerced to an ObjectID like on create.
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := store.ParseID(c.Param("orderId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid order id")
	}

	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	if raw, ok := fields["serviceId"]; ok {
		hex, _ := raw.(string)
		serviceID, err := store.ParseID(hex)
		if err != nil {
			return respond.Fail(c, http.StatusBadRequest, "Invalid service id")
		}
		fields["serviceId"] = serviceID
	}
	fields["updatedAt"] = time.Now().UTC()

	o, err := h.orders.UpdateByID(c.Request().Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("update order failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusAccepted, o)
}

// Delete handles DELETE /orders/:orderId.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := store.ParseID(c.Param("orderId"))
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid order id")
	}

	o, err := h.orders.DeleteByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respond.Fail(c, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		h.log.Error().Err(err).Msg("delete order failed")
		return respond.Unexpected(c, err)
	}
	return respond.Data(c, http.StatusOK, o)
}
