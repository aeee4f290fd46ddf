package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Users       *controllers.UserController
	Restaurants *controllers.RestaurantController
	Categories  *controllers.CategoryController
	Products    *controllers.ProductController
	Orders      *controllers.OrderController
}

// Register mounts the public routes and then the authenticated ones under /api.
func Register(router *gin.Engine, h Controllers, auth gin.HandlerFunc) {
	api := router.Group("/api")
	AuthRoutes(api, h.Users)

	private := api.Group("")
	private.Use(auth)
	UserRoutes(private, h)
	RestaurantRoutes(private, h)
	CategoryRoutes(private, h.Categories)
	ProductRoutes(private, h.Products)
	OrderRoutes(private, h.Orders)
}
