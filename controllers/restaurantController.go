package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-food-ordering/models"
)

type RestaurantService interface {
	AddRestaurant(ctx context.Context, p models.Principal, input models.RestaurantInput) (*models.Restaurant, error)
	GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error)
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurantsPage(ctx context.Context, page, limit int64) (*models.RestaurantPage, error)
	GetRestaurantsByUser(ctx context.Context, userID string) ([]models.Restaurant, error)
	SearchRestaurantsByName(ctx context.Context, name string) ([]models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, p models.Principal, id string, patch models.RestaurantPatch) (*models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, p models.Principal, id string) error
}

type RestaurantController struct {
	restaurants RestaurantService
	timeout     time.Duration
}

func NewRestaurantController(restaurants RestaurantService, timeout time.Duration) *RestaurantController {
	return &RestaurantController{restaurants: restaurants, timeout: timeout}
}

func (h *RestaurantController) CreateRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var input models.RestaurantInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		restaurant, err := h.restaurants.AddRestaurant(ctx, principal(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, restaurant)
	}
}

// GetRestaurants serves the name search, a page, or the full list depending
// on the query string.
func (h *RestaurantController) GetRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if name, ok := c.GetQuery("name"); ok {
			restaurants, err := h.restaurants.SearchRestaurantsByName(ctx, strings.TrimSpace(name))
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, restaurants)
			return
		}
		if page, limit, ok := pageParams(c); ok {
			result, err := h.restaurants.GetRestaurantsPage(ctx, page, limit)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, result)
			return
		}
		restaurants, err := h.restaurants.GetAllRestaurants(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

func (h *RestaurantController) GetRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		restaurant, err := h.restaurants.GetRestaurantByID(ctx, c.Param("restaurant_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

func (h *RestaurantController) GetRestaurantsByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		restaurants, err := h.restaurants.GetRestaurantsByUser(ctx, c.Param("user_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

func (h *RestaurantController) UpdateRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var patch models.RestaurantPatch
		if err := bindJSON(c, &patch); err != nil {
			respondError(c, err)
			return
		}
		restaurant, err := h.restaurants.UpdateRestaurant(ctx, principal(c), c.Param("restaurant_id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

func (h *RestaurantController) DeleteRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if err := h.restaurants.DeleteRestaurant(ctx, principal(c), c.Param("restaurant_id")); err != nil {
			respondError(c, err)
			return
		}
		deleted(c, "Restaurante eliminado")
	}
}
