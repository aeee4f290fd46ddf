package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-food-ordering/models"
)

type ProductService interface {
	AddProduct(ctx context.Context, p models.Principal, input models.ProductInput) (*models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, p models.Principal, id string, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, p models.Principal, id string) error
	GetProductsByCategory(ctx context.Context, categoryID, restaurantID string) ([]models.Product, error)
	GetProductsByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error)
	GetProductsPage(ctx context.Context, page, limit int64) (*models.ProductPage, error)
}

type ProductController struct {
	products ProductService
	timeout  time.Duration
}

func NewProductController(products ProductService, timeout time.Duration) *ProductController {
	return &ProductController{products: products, timeout: timeout}
}

func (h *ProductController) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var input models.ProductInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		product, err := h.products.AddProduct(ctx, principal(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GetProducts always answers with a page; the catalog is unbounded.
func (h *ProductController) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		page, limit, _ := pageParams(c)
		result, err := h.products.GetProductsPage(ctx, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *ProductController) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		product, err := h.products.GetProductByID(ctx, c.Param("product_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (h *ProductController) GetProductsByRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		products, err := h.products.GetProductsByRestaurant(ctx, c.Param("restaurant_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func (h *ProductController) GetProductsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		products, err := h.products.GetProductsByCategory(ctx, c.Param("category_id"), c.Param("restaurant_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func (h *ProductController) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var patch models.ProductPatch
		if err := bindJSON(c, &patch); err != nil {
			respondError(c, err)
			return
		}
		product, err := h.products.UpdateProduct(ctx, principal(c), c.Param("product_id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (h *ProductController) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if err := h.products.DeleteProduct(ctx, principal(c), c.Param("product_id")); err != nil {
			respondError(c, err)
			return
		}
		deleted(c, "Producto eliminado")
	}
}
