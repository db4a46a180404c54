package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moviesapi/internal/logging"
	"moviesapi/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const requestTimeout = 5 * time.Second

// writeServiceError maps service errors onto status codes. Domain errors are plain text;
// anything else is logged and hidden behind a generic 500.
func writeServiceError(c *gin.Context, err error, notFound string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.String(http.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrGenreNotFound), errors.Is(err, service.ErrMovieNotFound):
		c.String(http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrGenreInUse):
		c.String(http.StatusConflict, "Genre is still used by one or more movies!")
	default:
		_ = c.Error(err)
		logging.FromContext(c.Request.Context(), nil).Error("request_failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID reads a positive int64 path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid id: "+c.Param(name))
		return 0, false
	}
	return id, true
}

// bindErrorMessage turns binding failures into a readable sentence per field.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return fmt.Sprintf("Invalid number %q", numErr.Num)
		}
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required!")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters!", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid!", fe.Field()))
		}
	}
	return strings.Join(msgs, " ")
}
