package response

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
)

// JSON menulis envelope standar {status, message, data}.
func JSON(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// Error memetakan kode apperror ke status HTTP. Error yang tidak dikenal dicatat
// dan dikembalikan sebagai pesan umum.
func Error(c echo.Context, err error) error {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		return JSON(c, http.StatusBadRequest, err.Error(), nil)
	case apperror.CodeNotFound:
		return JSON(c, http.StatusNotFound, err.Error(), nil)
	case apperror.CodeForbidden:
		return JSON(c, http.StatusForbidden, err.Error(), nil)
	case apperror.CodeUnauthorized:
		return JSON(c, http.StatusUnauthorized, err.Error(), nil)
	case apperror.CodeConflict:
		return JSON(c, http.StatusConflict, err.Error(), nil)
	default:
		log.Printf("unexpected error on %s %s: %v", c.Request().Method, c.Path(), err)
		return JSON(c, http.StatusInternalServerError, "Internal error, please retry later", nil)
	}
}
