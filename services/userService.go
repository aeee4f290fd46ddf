package services

import (
	"context"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := helpers.ParseID(id, "userId")
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *UserService) GetUsersPage(ctx context.Context, page, limit int64) (*models.UserPage, error) {
	page, limit = helpers.NormalizePage(page, limit)
	users, err := s.users.List(ctx, helpers.Skip(page, limit), limit)
	if err != nil {
		return nil, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.UserPage{
		Total:       total,
		Users:       users,
		CurrentPage: page,
		TotalPages:  helpers.TotalPages(total, limit),
	}, nil
}

// UpdateUser changes p's own profile. A new password is hashed before it is stored.
func (s *UserService) UpdateUser(ctx context.Context, p models.Principal, id string, patch models.UserPatch) (*models.User, error) {
	patch.Normalize()
	if err := helpers.ValidateStruct(&patch); err != nil {
		return nil, err
	}
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canManageUser(p, user.ID); err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Correo != nil {
		user.Correo = *patch.Correo
	}
	if patch.Telefono != nil {
		user.Telefono = *patch.Telefono
	}
	if patch.Password != nil {
		hashed, err := helpers.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser refuses to remove a user that still owns restaurants.
func (s *UserService) DeleteUser(ctx context.Context, p models.Principal, id string) error {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canManageUser(p, user.ID); err != nil {
		return err
	}
	if len(user.Restaurantes) > 0 {
		return helpers.Conflict("El usuario tiene %d restaurantes registrados", len(user.Restaurantes))
	}
	return s.users.Delete(ctx, user.ID)
}
