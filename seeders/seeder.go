package seeders

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type Accounts interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.Registered, error)
	Login(ctx context.Context, input models.LoginInput) (string, error)
	Verify(token string) (models.Principal, error)
}

type RestaurantCatalog interface {
	AddRestaurant(ctx context.Context, p models.Principal, input models.RestaurantInput) (*models.Restaurant, error)
	GetRestaurantsByUser(ctx context.Context, userID string) ([]models.Restaurant, error)
}

type CategoryCatalog interface {
	AddCategory(ctx context.Context, p models.Principal, input models.CategoryInput) (*models.Category, error)
	GetCategoriesByRestaurant(ctx context.Context, restaurantID string) ([]models.Category, error)
}

type ProductCatalog interface {
	AddProduct(ctx context.Context, p models.Principal, input models.ProductInput) (*models.Product, error)
	GetProductsByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error)
}

// Seeder writes the demo catalog through the domain services so the same
// validation and denormalization apply as for API clients.
type Seeder struct {
	Users       Accounts
	Restaurants RestaurantCatalog
	Categories  CategoryCatalog
	Products    ProductCatalog
}

const (
	DemoOwnerEmail    = "pizzarey@example.com"
	demoOwnerPassword = "pizzarey123"
	demoRestaurant    = "Pizza el Rey"
)

type demoProduct struct {
	nombre      string
	precio      float64
	descripcion string
	categoria   int
	imagen      string
}

var demoCategories = []string{"Pizzas Clásicas", "Pizzas Especiales", "Bebidas", "Postres"}

var demoProducts = []demoProduct{
	{nombre: "Pizza Margarita", precio: 199, descripcion: "Salsa de tomate, mozzarella fresca y albahaca", categoria: 0, imagen: "https://loremflickr.com/640/480/pizza"},
	{nombre: "Pizza Pepperoni", precio: 219, descripcion: "Pepperoni y queso mozzarella", categoria: 0, imagen: "https://loremflickr.com/640/480/pepperoni"},
	{nombre: "Pizza Hawaiana Rey", precio: 249, descripcion: "Jamón, piña y queso manchego", categoria: 1, imagen: "https://loremflickr.com/640/480/hawaiianpizza"},
	{nombre: "Refresco 600ml", precio: 35, categoria: 2, imagen: "https://loremflickr.com/640/480/soda"},
	{nombre: "Tiramisú Italiano", precio: 89, descripcion: "Postre clásico con café y mascarpone", categoria: 3, imagen: "https://loremflickr.com/640/480/tiramisu"},
}

// SeedDemoCatalog creates the "Pizza el Rey" demo owner, restaurant, categories
// and products. Pieces that already exist are reused, so a run interrupted
// halfway is completed by the next one. When the demo email belongs to an
// account the demo password cannot log into, nothing is written.
func (s *Seeder) SeedDemoCatalog(ctx context.Context) (*models.Restaurant, error) {
	p, err := s.demoOwner(ctx)
	if helpers.KindOf(err) == helpers.KindUnauthorized {
		zap.S().Warnw("demo owner email taken by another account, skipping seed", "owner", DemoOwnerEmail)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	restaurant, err := s.demoRestaurant(ctx, p)
	if err != nil {
		return nil, err
	}

	existing, err := s.Categories.GetCategoriesByRestaurant(ctx, restaurant.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "list seeded categories")
	}
	categoryIDs := make(map[string]string, len(existing))
	for _, category := range existing {
		categoryIDs[category.Nombre] = category.ID.Hex()
	}
	var createdCategories int
	for _, name := range demoCategories {
		if _, ok := categoryIDs[name]; ok {
			continue
		}
		category, err := s.Categories.AddCategory(ctx, p, models.CategoryInput{
			Nombre:       name,
			RestaurantID: restaurant.ID.Hex(),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "seed category %s", name)
		}
		categoryIDs[name] = category.ID.Hex()
		createdCategories++
	}

	products, err := s.Products.GetProductsByRestaurant(ctx, restaurant.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "list seeded products")
	}
	seeded := make(map[string]bool, len(products))
	for _, product := range products {
		seeded[product.Nombre] = true
	}
	var createdProducts int
	for _, item := range demoProducts {
		if seeded[item.nombre] {
			continue
		}
		price := item.precio
		if _, err := s.Products.AddProduct(ctx, p, models.ProductInput{
			Nombre:        item.nombre,
			Precio:        &price,
			CategoriaID:   categoryIDs[demoCategories[item.categoria]],
			Descripcion:   item.descripcion,
			Imagenes:      []string{item.imagen},
			RestauranteID: restaurant.ID.Hex(),
		}); err != nil {
			return nil, errors.Wrapf(err, "seed product %s", item.nombre)
		}
		createdProducts++
	}

	if createdCategories == 0 && createdProducts == 0 {
		zap.S().Infow("demo catalog already seeded", "restaurant_id", restaurant.ID.Hex())
		return restaurant, nil
	}
	zap.S().Infow("demo catalog seeded",
		"restaurant_id", restaurant.ID.Hex(),
		"categories", createdCategories,
		"products", createdProducts,
	)
	return restaurant, nil
}

// demoOwner registers the demo owner, or logs in as it when the email is
// already registered.
func (s *Seeder) demoOwner(ctx context.Context) (models.Principal, error) {
	owner, err := s.Users.Register(ctx, models.RegisterInput{
		Username: demoRestaurant,
		Password: demoOwnerPassword,
		Correo:   DemoOwnerEmail,
		Telefono: "+52 55 1234 5678",
	})
	if err == nil {
		return models.Principal{ID: owner.ID, Username: owner.Username, Email: DemoOwnerEmail}, nil
	}
	if !helpers.IsConflict(err) {
		return models.Principal{}, errors.Wrap(err, "seed owner")
	}
	token, err := s.Users.Login(ctx, models.LoginInput{Correo: DemoOwnerEmail, Password: demoOwnerPassword})
	if err != nil {
		return models.Principal{}, errors.Wrap(err, "log in demo owner")
	}
	p, err := s.Users.Verify(token)
	return p, errors.Wrap(err, "verify demo owner")
}

func (s *Seeder) demoRestaurant(ctx context.Context, p models.Principal) (*models.Restaurant, error) {
	owned, err := s.Restaurants.GetRestaurantsByUser(ctx, p.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "list demo owner restaurants")
	}
	for i := range owned {
		if owned[i].Nombre == demoRestaurant {
			return &owned[i], nil
		}
	}
	restaurant, err := s.Restaurants.AddRestaurant(ctx, p, models.RestaurantInput{
		Nombre:    demoRestaurant,
		Correo:    "contacto@pizzaelrey.example.com",
		Telefono:  "+52 55 8765 4321",
		Direccion: "Av. Reforma 123",
		City:      "Ciudad de México",
	})
	return restaurant, errors.Wrap(err, "seed restaurant")
}
