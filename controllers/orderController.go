package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-food-ordering/models"
)

type OrderService interface {
	AddOrder(ctx context.Context, p models.Principal, input models.OrderInput) (*models.Order, error)
	GetOrderByID(ctx context.Context, p models.Principal, id string) (*models.Order, error)
	UpdateOrder(ctx context.Context, p models.Principal, id string, patch models.OrderPatch) (*models.Order, error)
	DeleteOrder(ctx context.Context, p models.Principal, id string) error
	GetAllOrders(ctx context.Context, p models.Principal) ([]models.Order, error)
	GetOrdersPage(ctx context.Context, p models.Principal, page, limit int64) (*models.OrderPage, error)
	GetOrdersByUser(ctx context.Context, p models.Principal, userID string) ([]models.Order, error)
	GetCompletedOrdersByUser(ctx context.Context, p models.Principal, userID string) ([]models.Order, error)
	GetOrdersByRestaurant(ctx context.Context, p models.Principal, restaurantID string) ([]models.Order, error)
}

type OrderController struct {
	orders  OrderService
	timeout time.Duration
}

func NewOrderController(orders OrderService, timeout time.Duration) *OrderController {
	return &OrderController{orders: orders, timeout: timeout}
}

func (h *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var input models.OrderInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		order, err := h.orders.AddOrder(ctx, principal(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func (h *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if page, limit, ok := pageParams(c); ok {
			result, err := h.orders.GetOrdersPage(ctx, principal(c), page, limit)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, result)
			return
		}
		orders, err := h.orders.GetAllOrders(ctx, principal(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (h *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		order, err := h.orders.GetOrderByID(ctx, principal(c), c.Param("order_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (h *OrderController) GetOrdersByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		orders, err := h.orders.GetOrdersByUser(ctx, principal(c), c.Param("user_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (h *OrderController) GetCompletedOrdersByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		orders, err := h.orders.GetCompletedOrdersByUser(ctx, principal(c), c.Param("user_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (h *OrderController) GetOrdersByRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		orders, err := h.orders.GetOrdersByRestaurant(ctx, principal(c), c.Param("restaurant_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (h *OrderController) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var patch models.OrderPatch
		if err := bindJSON(c, &patch); err != nil {
			respondError(c, err)
			return
		}
		order, err := h.orders.UpdateOrder(ctx, principal(c), c.Param("order_id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (h *OrderController) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if err := h.orders.DeleteOrder(ctx, principal(c), c.Param("order_id")); err != nil {
			respondError(c, err)
			return
		}
		deleted(c, "Orden eliminada")
	}
}
