package routes

import (
	"github.com/gin-gonic/gin"
)

func RestaurantRoutes(incomingRoutes *gin.RouterGroup, h Controllers) {
	incomingRoutes.POST("/restaurants", h.Restaurants.CreateRestaurant())
	incomingRoutes.GET("/restaurants", h.Restaurants.GetRestaurants())
	incomingRoutes.GET("/restaurants/:restaurant_id", h.Restaurants.GetRestaurant())
	incomingRoutes.PUT("/restaurants/:restaurant_id", h.Restaurants.UpdateRestaurant())
	incomingRoutes.DELETE("/restaurants/:restaurant_id", h.Restaurants.DeleteRestaurant())
	incomingRoutes.GET("/restaurants/:restaurant_id/categories", h.Categories.GetCategoriesByRestaurant())
	incomingRoutes.GET("/restaurants/:restaurant_id/categories/:category_id/products", h.Products.GetProductsByCategory())
	incomingRoutes.GET("/restaurants/:restaurant_id/products", h.Products.GetProductsByRestaurant())
	incomingRoutes.GET("/restaurants/:restaurant_id/orders", h.Orders.GetOrdersByRestaurant())
}
