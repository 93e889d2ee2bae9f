package users

import (
	"net/http"
	"strings"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/model"
	"lightbnb/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Create a new user
// @Description 建立新帳號並直接登入 (Email 會自動轉小寫)
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "使用者姓名"
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     201      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.RespondError(c, "CreateUser: hash", err)
		}

		user, err := addUser(c.Request().Context(), db, &model.User{
			Name:     req.Name,
			Email:    strings.ToLower(req.Email),
			Password: hash,
		})
		if err != nil {
			return handler.RespondError(c, "CreateUser", err)
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return handler.RespondError(c, "CreateUser: token", err)
		}

		return c.JSON(http.StatusCreated, api.LoginResponse{
			User:        toUserResponse(user),
			AccessToken: token,
		})
	}
}
