package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-food-ordering/models"
)

type Authenticator interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.Registered, error)
	Login(ctx context.Context, input models.LoginInput) (string, error)
}

type UserService interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUsersPage(ctx context.Context, page, limit int64) (*models.UserPage, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, p models.Principal, id string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, p models.Principal, id string) error
}

type UserController struct {
	auth    Authenticator
	users   UserService
	timeout time.Duration
}

func NewUserController(auth Authenticator, users UserService, timeout time.Duration) *UserController {
	return &UserController{auth: auth, users: users, timeout: timeout}
}

func (h *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var input models.RegisterInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		registered, err := h.auth.Register(ctx, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, registered)
	}
}

func (h *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var input models.LoginInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		token, err := h.auth.Login(ctx, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GetUsers lists every user, or one page of them when page or limit is given.
func (h *UserController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if page, limit, ok := pageParams(c); ok {
			result, err := h.users.GetUsersPage(ctx, page, limit)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, result)
			return
		}
		users, err := h.users.GetAllUsers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func (h *UserController) CountUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		total, err := h.users.CountUsers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total})
	}
}

func (h *UserController) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		user, err := h.users.GetUserByID(ctx, c.Param("user_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (h *UserController) UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		var patch models.UserPatch
		if err := bindJSON(c, &patch); err != nil {
			respondError(c, err)
			return
		}
		user, err := h.users.UpdateUser(ctx, principal(c), c.Param("user_id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (h *UserController) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, h.timeout)
		defer cancel()

		if err := h.users.DeleteUser(ctx, principal(c), c.Param("user_id")); err != nil {
			respondError(c, err)
			return
		}
		deleted(c, "Usuario eliminado")
	}
}
