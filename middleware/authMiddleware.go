package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

const principalKey = "principal"

type TokenVerifier interface {
	Verify(token string) (models.Principal, error)
}

// Authentication accepts "Authorization: Bearer <token>" and falls back to
// the bare "token" header.
func Authentication(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := bearerToken(c.Request)
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token requerido"})
			return
		}
		p, err := verifier.Verify(clientToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": helpers.PublicMessage(err)})
			return
		}
		c.Set(principalKey, p)
		c.Set("uid", p.ID.Hex())
		c.Set("email", p.Email)
		c.Next()
	}
}

// CurrentPrincipal returns the caller set by Authentication, or the zero
// principal on public routes.
func CurrentPrincipal(c *gin.Context) models.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	return models.Principal{}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return strings.TrimSpace(r.Header.Get("token"))
}
