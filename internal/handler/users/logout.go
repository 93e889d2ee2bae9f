package users

import (
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/cache"
	"lightbnb/internal/handler"
	"lightbnb/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 將目前的 token 記錄為已登出直到其過期
// @Summary     登出使用者
// @Tags        users
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/logout [post]
func LogoutHandler(revoked cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if err := revokeToken(c.Request().Context(), revoked, claims.ID, claims.TimeToExpiry()); err != nil {
			return handler.RespondError(c, "Logout", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
