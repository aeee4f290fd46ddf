package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type RestaurantService struct {
	restaurants RestaurantRepository
	users       UserRepository
}

func NewRestaurantService(restaurants RestaurantRepository, users UserRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, users: users}
}

// AddRestaurant stores a restaurant owned by p and links it back to p's
// user record. The restaurant is removed again if the link cannot be written.
func (s *RestaurantService) AddRestaurant(ctx context.Context, p models.Principal, input models.RestaurantInput) (*models.Restaurant, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	input.Normalize()
	if err := helpers.ValidateStruct(&input); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, p.ID); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Nombre:    input.Nombre,
		Correo:    input.Correo,
		Telefono:  input.Telefono,
		Direccion: input.Direccion,
		City:      input.City,
		UserID:    p.ID,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	if err := s.users.AddRestaurant(ctx, p.ID, restaurant.ID); err != nil {
		if delErr := s.restaurants.Delete(ctx, restaurant.ID); delErr != nil {
			zap.S().Errorw("rollback of restaurant failed", "restaurant_id", restaurant.ID.Hex(), "error", delErr)
		}
		return nil, err
	}
	zap.S().Infow("restaurant created", "restaurant_id", restaurant.ID.Hex(), "user_id", p.ID.Hex())
	return restaurant, nil
}

func (s *RestaurantService) GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error) {
	restaurantID, err := helpers.ParseID(id, "restaurantId")
	if err != nil {
		return nil, err
	}
	return s.restaurants.FindByID(ctx, restaurantID)
}

func (s *RestaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurants.FindAll(ctx)
}

func (s *RestaurantService) GetRestaurantsPage(ctx context.Context, page, limit int64) (*models.RestaurantPage, error) {
	page, limit = helpers.NormalizePage(page, limit)
	restaurants, err := s.restaurants.List(ctx, helpers.Skip(page, limit), limit)
	if err != nil {
		return nil, err
	}
	total, err := s.restaurants.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.RestaurantPage{
		Total:       total,
		Restaurants: restaurants,
		CurrentPage: page,
		TotalPages:  helpers.TotalPages(total, limit),
	}, nil
}

func (s *RestaurantService) GetRestaurantsByUser(ctx context.Context, userID string) ([]models.Restaurant, error) {
	id, err := helpers.ParseID(userID, "userId")
	if err != nil {
		return nil, err
	}
	return s.restaurants.FindByUser(ctx, id)
}

func (s *RestaurantService) SearchRestaurantsByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, helpers.Validation("el nombre a buscar es obligatorio")
	}
	return s.restaurants.FindByName(ctx, name)
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, p models.Principal, id string, patch models.RestaurantPatch) (*models.Restaurant, error) {
	patch.Normalize()
	if err := helpers.ValidateStruct(&patch); err != nil {
		return nil, err
	}
	restaurant, err := s.GetRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canManageRestaurant(p, restaurant); err != nil {
		return nil, err
	}

	if patch.Nombre != nil {
		restaurant.Nombre = *patch.Nombre
	}
	if patch.Correo != nil {
		restaurant.Correo = *patch.Correo
	}
	if patch.Telefono != nil {
		restaurant.Telefono = *patch.Telefono
	}
	if patch.Direccion != nil {
		restaurant.Direccion = *patch.Direccion
	}
	if patch.City != nil {
		restaurant.City = *patch.City
	}
	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// DeleteRestaurant removes the restaurant and strips it from its owner's set.
// Categories and products of the restaurant are left in place.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, p models.Principal, id string) error {
	restaurant, err := s.GetRestaurantByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canManageRestaurant(p, restaurant); err != nil {
		return err
	}
	if err := s.users.RemoveRestaurant(ctx, restaurant.UserID, restaurant.ID); err != nil && !helpers.IsNotFound(err) {
		return err
	}
	if err := s.restaurants.Delete(ctx, restaurant.ID); err != nil {
		if linkErr := s.users.AddRestaurant(ctx, restaurant.UserID, restaurant.ID); linkErr != nil {
			zap.S().Errorw("relink of restaurant failed", "restaurant_id", restaurant.ID.Hex(), "error", linkErr)
		}
		return err
	}
	zap.S().Infow("restaurant deleted", "restaurant_id", restaurant.ID.Hex())
	return nil
}
