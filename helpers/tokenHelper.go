package helpers

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/models"
)

type SignedDetails struct {
	Uid      string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.StandardClaims
}

// TokenMaker signs and verifies HS256 bearer tokens.
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenMaker) GenerateToken(user *models.User) (string, error) {
	issuedAt := m.now()
	claim := SignedDetails{
		Uid:      user.ID.Hex(),
		Username: user.Username,
		Email:    user.Correo,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(m.ttl).Unix(),
			Subject:   user.ID.Hex(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

func (m *TokenMaker) ValidateToken(signedToken string) (models.Principal, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return models.Principal{}, Unauthorized("token expirado")
		}
		return models.Principal{}, Unauthorized("token inválido")
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return models.Principal{}, Unauthorized("token inválido")
	}
	id, err := primitive.ObjectIDFromHex(claims.Uid)
	if err != nil {
		return models.Principal{}, Unauthorized("token inválido")
	}
	return models.Principal{ID: id, Username: claims.Username, Email: claims.Email}, nil
}
