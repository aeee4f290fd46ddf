package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*models.Registered, error) {
	input.Normalize()
	if err := helpers.ValidateStruct(&input); err != nil {
		return nil, err
	}
	hashed, err := helpers.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     input.Username,
		Password:     hashed,
		Correo:       input.Correo,
		Telefono:     input.Telefono,
		Restaurantes: []primitive.ObjectID{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	zap.S().Infow("user registered", "user_id", user.ID.Hex())
	return &models.Registered{ID: user.ID, Username: user.Username}, nil
}

// Login returns a signed token for valid credentials. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, input models.LoginInput) (string, error) {
	input.Normalize()
	if err := helpers.ValidateStruct(&input); err != nil {
		return "", err
	}
	user, err := s.users.FindByEmail(ctx, input.Correo)
	if err != nil {
		if helpers.IsNotFound(err) {
			return "", helpers.Unauthorized("Credenciales inválidas")
		}
		return "", err
	}
	if !helpers.VerifyPassword(user.Password, input.Password) {
		return "", helpers.Unauthorized("Credenciales inválidas")
	}
	return s.tokens.GenerateToken(user)
}

func (s *AuthService) Verify(token string) (models.Principal, error) {
	return s.tokens.ValidateToken(token)
}
