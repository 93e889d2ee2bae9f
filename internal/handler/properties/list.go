package properties

import (
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListPropertiesHandler 依篩選條件搜尋房源
// @Summary     Search properties
// @Tags        properties
// @Produce     json
// @Param       city                    query string false "城市（部分比對）"
// @Param       minimum_price_per_night query int    false "每晚最低價格"
// @Param       maximum_price_per_night query int    false "每晚最高價格"
// @Param       owner_id                query int    false "房東 ID"
// @Param       minimum_rating          query number false "最低平均評分"
// @Param       limit                   query int    false "筆數上限 (預設 20)"
// @Success     200 {object} map[string][]model.PropertyListing
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /properties [get]
func ListPropertiesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PropertySearchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query"})
		}
		filter, limit, err := toFilter(req)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		listings, err := getAllProperties(c.Request().Context(), db, filter, limit)
		if err != nil {
			return handler.RespondError(c, "ListProperties", err)
		}
		return c.JSON(http.StatusOK, listResponse{Properties: listings})
	}
}
