package users

import (
	"net/http"
	"strings"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /users/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserWithEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return handler.RespondError(c, "Login", err)
		}
		if user == nil || authenticateUser(*user, req.Password) != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return handler.RespondError(c, "Login: token", err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			User:        toUserResponse(user),
			AccessToken: token,
		})
	}
}
