package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"go-food-ordering/helpers"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
)

const defaultTimeout = 10 * time.Second

var errorStatus = map[helpers.ErrorKind]int{
	helpers.KindNotFound:     http.StatusNotFound,
	helpers.KindConflict:     http.StatusConflict,
	helpers.KindValidation:   http.StatusBadRequest,
	helpers.KindUnauthorized: http.StatusUnauthorized,
	helpers.KindForbidden:    http.StatusForbidden,
}

func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// respondError writes err with the status its kind maps to. Internal errors
// are logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	kind := helpers.KindOf(err)
	status, ok := errorStatus[kind]
	if ok {
		zap.S().Debugw("request rejected",
			"path", c.FullPath(),
			"kind", kind.String(),
			"request_id", c.GetString(middleware.RequestIDKey),
		)
	} else {
		status = http.StatusInternalServerError
		zap.S().Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": helpers.PublicMessage(err)})
}

// bindJSON decodes the request body into dst, rejecting unknown fields.
func bindJSON(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil {
		return helpers.Validation("el cuerpo de la petición es obligatorio")
	}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return helpers.Validation("cuerpo inválido: %s", err.Error())
	}
	return nil
}

func principal(c *gin.Context) models.Principal {
	return middleware.CurrentPrincipal(c)
}

// pageParams reads page and limit from the query string. ok is false when
// neither is present.
func pageParams(c *gin.Context) (page, limit int64, ok bool) {
	rawPage, hasPage := c.GetQuery("page")
	rawLimit, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return 0, 0, false
	}
	return cast.ToInt64(rawPage), cast.ToInt64(rawLimit), true
}

func deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
