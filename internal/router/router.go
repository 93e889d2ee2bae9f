// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"lightbnb/internal/cache"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/handler/properties"
	"lightbnb/internal/handler/reservations"
	"lightbnb/internal/handler/users"
	"lightbnb/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(cch)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 房源搜尋公開，新增需登入
	api.GET("/properties", properties.ListPropertiesHandler(db))
	api.POST("/properties", properties.CreatePropertyHandler(db), requireAuth)

	api.GET("/reservations", reservations.ListReservationsHandler(db), requireAuth)

	// 註冊、登入、登出
	api.POST("/users", users.CreateUserHandler(db))
	api.POST("/users/login", users.LoginHandler(db))
	api.POST("/users/logout", users.LogoutHandler(cch), requireAuth)
	api.GET("/users/me", users.GetMeHandler(db), requireAuth)
}
