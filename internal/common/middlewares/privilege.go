package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/common/response"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

// RequireAdmin hanya meneruskan request dari karyawan dengan hak admin.
// Harus dipasang setelah JWTMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return response.JSON(c, http.StatusUnauthorized, "Missing or invalid JWT claims", nil)
			}
			if !claims.IsAdmin {
				return response.JSON(c, http.StatusForbidden, "Anda tidak memiliki hak akses", nil)
			}
			return next(c)
		}
	}
}

// AuthorizeEmployee memastikan pemanggil adalah karyawan itu sendiri atau admin.
func AuthorizeEmployee(claims *utils.Claims, employeeID int64) error {
	if claims == nil {
		return apperror.New(apperror.CodeUnauthorized, "Missing or invalid JWT claims")
	}
	if claims.IsAdmin {
		return nil
	}
	callerID, err := claims.EmployeeID()
	if err != nil {
		return apperror.New(apperror.CodeUnauthorized, err.Error())
	}
	if callerID != employeeID {
		return apperror.Forbidden("Unauthorized access")
	}
	return nil
}
