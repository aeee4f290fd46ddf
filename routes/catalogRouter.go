package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

func CategoryRoutes(incomingRoutes *gin.RouterGroup, categories *controllers.CategoryController) {
	incomingRoutes.POST("/categories", categories.CreateCategory())
	incomingRoutes.GET("/categories", categories.GetCategories())
	incomingRoutes.GET("/categories/:category_id", categories.GetCategory())
	incomingRoutes.PUT("/categories/:category_id", categories.UpdateCategory())
	incomingRoutes.DELETE("/categories/:category_id", categories.DeleteCategory())
}

func ProductRoutes(incomingRoutes *gin.RouterGroup, products *controllers.ProductController) {
	incomingRoutes.POST("/products", products.CreateProduct())
	incomingRoutes.GET("/products", products.GetProducts())
	incomingRoutes.GET("/products/:product_id", products.GetProduct())
	incomingRoutes.PUT("/products/:product_id", products.UpdateProduct())
	incomingRoutes.DELETE("/products/:product_id", products.DeleteProduct())
}
