package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

func AuthRoutes(incomingRoutes *gin.RouterGroup, users *controllers.UserController) {
	incomingRoutes.POST("/register", users.SignUp())
	incomingRoutes.POST("/login", users.Login())
}

func UserRoutes(incomingRoutes *gin.RouterGroup, h Controllers) {
	incomingRoutes.GET("/users", h.Users.GetUsers())
	incomingRoutes.GET("/users/count", h.Users.CountUsers())
	incomingRoutes.GET("/users/:user_id", h.Users.GetUser())
	incomingRoutes.PATCH("/users/:user_id", h.Users.UpdateUser())
	incomingRoutes.DELETE("/users/:user_id", h.Users.DeleteUser())
	incomingRoutes.GET("/users/:user_id/restaurants", h.Restaurants.GetRestaurantsByUser())
	incomingRoutes.GET("/users/:user_id/orders", h.Orders.GetOrdersByUser())
	incomingRoutes.GET("/users/:user_id/orders/completed", h.Orders.GetCompletedOrdersByUser())
}
