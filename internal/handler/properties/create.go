package properties

import (
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/middleware"
	"lightbnb/internal/model"

	"github.com/labstack/echo/v4"
)

// CreatePropertyHandler 以登入者為房東新增房源
// @Summary     Create a property
// @Tags        properties
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Success     201 {object} model.Property
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties [post]
func CreatePropertyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreatePropertyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		p, err := addProperty(c.Request().Context(), db, &model.Property{
			OwnerID:           claims.UserID,
			Title:             req.Title,
			Description:       req.Description,
			ThumbnailPhotoURL: req.ThumbnailPhotoURL,
			CoverPhotoURL:     req.CoverPhotoURL,
			CostPerNight:      req.CostPerNight,
			ParkingSpaces:     req.ParkingSpaces,
			NumberOfBathrooms: req.NumberOfBathrooms,
			NumberOfBedrooms:  req.NumberOfBedrooms,
			Country:           req.Country,
			Street:            req.Street,
			City:              req.City,
			Province:          req.Province,
			PostCode:          req.PostCode,
		})
		if err != nil {
			return handler.RespondError(c, "CreateProperty", err)
		}
		return c.JSON(http.StatusCreated, p)
	}
}
