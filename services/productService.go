package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type ProductService struct {
	products    ProductRepository
	categories  CategoryRepository
	restaurants RestaurantRepository
}

func NewProductService(products ProductRepository, categories CategoryRepository, restaurants RestaurantRepository) *ProductService {
	return &ProductService{products: products, categories: categories, restaurants: restaurants}
}

// AddProduct copies the referenced category's current name onto the product.
// A missing category is an error, never a default.
func (s *ProductService) AddProduct(ctx context.Context, p models.Principal, input models.ProductInput) (*models.Product, error) {
	input.Normalize()
	if err := helpers.ValidateStruct(&input); err != nil {
		return nil, err
	}
	categoryID, err := helpers.ParseID(input.CategoriaID, "categoriaId")
	if err != nil {
		return nil, err
	}
	restaurantID, err := helpers.ParseID(input.RestauranteID, "restauranteId")
	if err != nil {
		return nil, err
	}
	category, err := s.resolveCategory(ctx, categoryID, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, restaurantID); err != nil {
		return nil, err
	}

	available := true
	if input.Disponibilidad != nil {
		available = *input.Disponibilidad
	}
	product := &models.Product{
		Nombre:          input.Nombre,
		Precio:          *input.Precio,
		CategoriaID:     category.ID,
		NombreCategoria: category.Nombre,
		Descripcion:     input.Descripcion,
		Disponibilidad:  available,
		Imagenes:        input.Imagenes,
		RestauranteID:   restaurantID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	productID, err := helpers.ParseID(id, "productId")
	if err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, productID)
}

// UpdateProduct merges patch into the stored product. Moving the product to
// another category refreshes its category name snapshot.
func (s *ProductService) UpdateProduct(ctx context.Context, p models.Principal, id string, patch models.ProductPatch) (*models.Product, error) {
	patch.Normalize()
	if err := helpers.ValidateStruct(&patch); err != nil {
		return nil, err
	}
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, product.RestauranteID); err != nil {
		return nil, err
	}

	if patch.CategoriaID != nil {
		categoryID, err := helpers.ParseID(*patch.CategoriaID, "categoriaId")
		if err != nil {
			return nil, err
		}
		category, err := s.resolveCategory(ctx, categoryID, product.RestauranteID)
		if err != nil {
			return nil, err
		}
		product.CategoriaID = category.ID
		product.NombreCategoria = category.Nombre
	}
	if patch.Nombre != nil {
		product.Nombre = *patch.Nombre
	}
	if patch.Precio != nil {
		product.Precio = *patch.Precio
	}
	if patch.Descripcion != nil {
		product.Descripcion = *patch.Descripcion
	}
	if patch.Disponibilidad != nil {
		product.Disponibilidad = *patch.Disponibilidad
	}
	if patch.Imagenes != nil {
		product.Imagenes = patch.Imagenes
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, p models.Principal, id string) error {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, p, product.RestauranteID); err != nil {
		return err
	}
	return s.products.Delete(ctx, product.ID)
}

// GetProductsByCategory matches on both category and restaurant; no match is
// an empty list.
func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID, restaurantID string) ([]models.Product, error) {
	catID, err := helpers.ParseID(categoryID, "categoryId")
	if err != nil {
		return nil, err
	}
	restID, err := helpers.ParseID(restaurantID, "restaurantId")
	if err != nil {
		return nil, err
	}
	return s.products.FindByCategory(ctx, catID, restID)
}

func (s *ProductService) GetProductsByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error) {
	id, err := helpers.ParseID(restaurantID, "restaurantId")
	if err != nil {
		return nil, err
	}
	return s.products.FindByRestaurant(ctx, id)
}

func (s *ProductService) GetProductsPage(ctx context.Context, page, limit int64) (*models.ProductPage, error) {
	page, limit = helpers.NormalizePage(page, limit)
	products, err := s.products.List(ctx, helpers.Skip(page, limit), limit)
	if err != nil {
		return nil, err
	}
	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ProductPage{
		Total:       total,
		Products:    products,
		CurrentPage: page,
		TotalPages:  helpers.TotalPages(total, limit),
	}, nil
}

func (s *ProductService) resolveCategory(ctx context.Context, categoryID, restaurantID primitive.ObjectID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if helpers.IsNotFound(err) {
			return nil, helpers.NotFound("Categoría no encontrada")
		}
		return nil, err
	}
	if category.RestaurantID != restaurantID {
		return nil, helpers.Validation("la categoría no pertenece al restaurante")
	}
	return category, nil
}

func (s *ProductService) authorize(ctx context.Context, p models.Principal, restaurantID primitive.ObjectID) error {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	return canManageRestaurant(p, restaurant)
}
