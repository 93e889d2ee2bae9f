// File: internal/handler/users/get_me.go
package users

import (
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/middleware"

	"github.com/labstack/echo/v4"
)

// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserWithID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return handler.RespondError(c, "GetMe", err)
		}
		if user == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, toUserResponse(user))
	}
}
