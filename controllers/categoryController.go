package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-food-ordering/models"
)

type CategoryService interface {
	AddCategory(ctx context.Context, p models.Principal, input models.CategoryInput) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	UpdateCategory(ctx context.Context, p models.Principal, id string, patch models.CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, p models.Principal, id string) error
	GetCategoriesByRestaurant(ctx context.Context, restaurantID string) ([]models.Category, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoriesPage(ctx context.Context, page, limit int64) (*models.CategoryPage, error)
}

type CategoryController struct {
	categories CategoryService
	timeout    time.Duration
}

func NewCategoryController(categories CategoryService, timeout time.Duration) *CategoryController {
	return &CategoryController{categories: categories, timeout: timeout}
}

func (h *CategoryController) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var input models.CategoryInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		category, err := h.categories.AddCategory(ctx, principal(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func (h *CategoryController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if page, limit, ok := pageParams(c); ok {
			result, err := h.categories.GetCategoriesPage(ctx, page, limit)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, result)
			return
		}
		categories, err := h.categories.GetAllCategories(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func (h *CategoryController) GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		category, err := h.categories.GetCategoryByID(ctx, c.Param("category_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func (h *CategoryController) GetCategoriesByRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		categories, err := h.categories.GetCategoriesByRestaurant(ctx, c.Param("restaurant_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func (h *CategoryController) UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var patch models.CategoryPatch
		if err := bindJSON(c, &patch); err != nil {
			respondError(c, err)
			return
		}
		category, err := h.categories.UpdateCategory(ctx, principal(c), c.Param("category_id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func (h *CategoryController) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if err := h.categories.DeleteCategory(ctx, principal(c), c.Param("category_id")); err != nil {
			respondError(c, err)
			return
		}
		deleted(c, "Categoría eliminada")
	}
}
