package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/api/metrics"
	"github.com/mocklab/corpmock/internal/core/ports"
)

// CatalogHandler handles the open users/products/orders endpoints.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RandomUser handles GET /users/random.
//
// @Summary      Get a random user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      500  {object}  map[string]string
// @Router       /users/random [get]
func (h *CatalogHandler) RandomUser(c echo.Context) error {
	user, err := h.service.RandomUser(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.RecordsServedTotal.WithLabelValues("users").Inc()
	return c.JSON(http.StatusOK, user)
}

// AllUsers handles GET /users/all.
func (h *CatalogHandler) AllUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AllUsers(c.Request().Context()))
}

// UserByID handles GET /users/:id.
func (h *CatalogHandler) UserByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user id must be an integer")
	}
	user, err := h.service.UserByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// RandomProduct handles GET /products/random.
//
// @Summary      Get a random product
// @Tags         products
// @Produce      json
// @Success      200  {object}  domain.Product
// @Router       /products/random [get]
func (h *CatalogHandler) RandomProduct(c echo.Context) error {
	product, err := h.service.RandomProduct(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.RecordsServedTotal.WithLabelValues("products").Inc()
	return c.JSON(http.StatusOK, product)
}

// AllProducts handles GET /products/all.
func (h *CatalogHandler) AllProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AllProducts(c.Request().Context()))
}

// ProductsByCategory handles GET /products/category/:category. An
// unknown category yields an empty array, not a 404.
func (h *CatalogHandler) ProductsByCategory(c echo.Context) error {
	products := h.service.ProductsByCategory(c.Request().Context(), c.Param("category"))
	return c.JSON(http.StatusOK, products)
}

// RandomOrder handles GET /orders/random.
func (h *CatalogHandler) RandomOrder(c echo.Context) error {
	order, err := h.service.RandomOrder(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.RecordsServedTotal.WithLabelValues("orders").Inc()
	return c.JSON(http.StatusOK, order)
}

// AllOrders handles GET /orders/all.
func (h *CatalogHandler) AllOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AllOrders(c.Request().Context()))
}

// OrdersByUser handles GET /orders/user/:user_id.
func (h *CatalogHandler) OrdersByUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user id must be an integer")
	}
	orders := h.service.OrdersByUser(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, orders)
}
