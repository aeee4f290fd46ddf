package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type CategoryService struct {
	categories  CategoryRepository
	restaurants RestaurantRepository
}

func NewCategoryService(categories CategoryRepository, restaurants RestaurantRepository) *CategoryService {
	return &CategoryService{categories: categories, restaurants: restaurants}
}

// AddCategory creates a category on a restaurant and registers it in the
// restaurant's category set. Names are unique per restaurant.
func (s *CategoryService) AddCategory(ctx context.Context, p models.Principal, input models.CategoryInput) (*models.Category, error) {
	input.Normalize()
	if err := helpers.ValidateStruct(&input); err != nil {
		return nil, err
	}
	restaurantID, err := helpers.ParseID(input.RestaurantID, "restaurantId")
	if err != nil {
		return nil, err
	}
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := canManageRestaurant(p, restaurant); err != nil {
		return nil, err
	}

	name := input.Nombre
	if err := s.ensureNameFree(ctx, restaurantID, name); err != nil {
		return nil, err
	}

	category := &models.Category{Nombre: name, RestaurantID: restaurantID}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	if err := s.restaurants.AddCategory(ctx, restaurantID, category.ID); err != nil {
		if delErr := s.categories.Delete(ctx, category.ID); delErr != nil {
			zap.S().Errorw("rollback of category failed", "category_id", category.ID.Hex(), "error", delErr)
		}
		return nil, err
	}
	zap.S().Infow("category created", "category_id", category.ID.Hex(), "restaurant_id", restaurantID.Hex())
	return category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	categoryID, err := helpers.ParseID(id, "categoryId")
	if err != nil {
		return nil, err
	}
	return s.categories.FindByID(ctx, categoryID)
}

// UpdateCategory renames a category. Products keep the name they were
// written with.
func (s *CategoryService) UpdateCategory(ctx context.Context, p models.Principal, id string, patch models.CategoryPatch) (*models.Category, error) {
	patch.Normalize()
	if err := helpers.ValidateStruct(&patch); err != nil {
		return nil, err
	}
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, category); err != nil {
		return nil, err
	}

	if patch.Nombre != nil {
		name := *patch.Nombre
		if name != category.Nombre {
			if err := s.ensureNameFree(ctx, category.RestaurantID, name); err != nil {
				return nil, err
			}
		}
		category.Nombre = name
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, p models.Principal, id string) error {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, p, category); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return err
	}
	if err := s.restaurants.RemoveCategory(ctx, category.RestaurantID, category.ID); err != nil && !helpers.IsNotFound(err) {
		return err
	}
	return nil
}

// GetCategoriesByRestaurant returns an empty list when the restaurant has no
// categories yet.
func (s *CategoryService) GetCategoriesByRestaurant(ctx context.Context, restaurantID string) ([]models.Category, error) {
	id, err := helpers.ParseID(restaurantID, "restaurantId")
	if err != nil {
		return nil, err
	}
	return s.categories.FindByRestaurant(ctx, id)
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) CountCategories(ctx context.Context) (int64, error) {
	return s.categories.Count(ctx)
}

func (s *CategoryService) GetCategoriesPage(ctx context.Context, page, limit int64) (*models.CategoryPage, error) {
	page, limit = helpers.NormalizePage(page, limit)
	categories, err := s.categories.List(ctx, helpers.Skip(page, limit), limit)
	if err != nil {
		return nil, err
	}
	total, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.CategoryPage{
		Total:       total,
		Categories:  categories,
		CurrentPage: page,
		TotalPages:  helpers.TotalPages(total, limit),
	}, nil
}

func (s *CategoryService) ensureNameFree(ctx context.Context, restaurantID primitive.ObjectID, name string) error {
	existing, err := s.categories.FindByRestaurantAndName(ctx, restaurantID, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return helpers.Conflict("La categoría %s ya existe en el restaurante", name)
	}
	return nil
}

func (s *CategoryService) authorize(ctx context.Context, p models.Principal, category *models.Category) error {
	restaurant, err := s.restaurants.FindByID(ctx, category.RestaurantID)
	if err != nil {
		return err
	}
	return canManageRestaurant(p, restaurant)
}
