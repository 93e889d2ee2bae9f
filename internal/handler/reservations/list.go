package reservations

import (
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/middleware"
	"lightbnb/internal/store"

	"github.com/labstack/echo/v4"
)

var getAllReservations = store.GetAllReservations

type listResponse struct {
	Reservations any `json:"reservations"`
}

// ListReservationsHandler 列出登入者即將到來的預約
// @Summary     List my upcoming reservations
// @Tags        reservations
// @Produce     json
// @Success     200 {object} map[string][]model.ReservationListing
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations [get]
func ListReservationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		listings, err := getAllReservations(c.Request().Context(), db, claims.UserID, store.DefaultLimit)
		if err != nil {
			return handler.RespondError(c, "ListReservations", err)
		}
		return c.JSON(http.StatusOK, listResponse{Reservations: listings})
	}
}
