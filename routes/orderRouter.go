package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

func OrderRoutes(incomingRoutes *gin.RouterGroup, orders *controllers.OrderController) {
	incomingRoutes.POST("/orders", orders.CreateOrder())
	incomingRoutes.GET("/orders", orders.GetOrders())
	incomingRoutes.GET("/orders/:order_id", orders.GetOrder())
	incomingRoutes.PUT("/orders/:order_id", orders.UpdateOrder())
	incomingRoutes.PATCH("/orders/:order_id", orders.UpdateOrder())
	incomingRoutes.DELETE("/orders/:order_id", orders.DeleteOrder())
}
