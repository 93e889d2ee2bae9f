package store

import (
	"context"

	"lightbnb/internal/apperrors"
	"lightbnb/internal/database"
	"lightbnb/internal/model"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

var pgDialect = goqu.Dialect("postgres")

// 欄位順序即 VALUES 的 $1..$14 順序
var propertyInsertColumns = []any{
	"owner_id",
	"title",
	"description",
	"thumbnail_photo_url",
	"cover_photo_url",
	"cost_per_night",
	"parking_spaces",
	"number_of_bathrooms",
	"number_of_bedrooms",
	"country",
	"street",
	"city",
	"province",
	"post_code",
}

var propertyReturningColumns = append([]any{"id"}, propertyInsertColumns...)

// GetAllProperties 依條件查詢房源，每列附上平均評分
func GetAllProperties(ctx context.Context, db database.DB, filter PropertyFilter, limit int) ([]model.PropertyListing, error) {
	q := BuildPropertyQuery(filter, limit)
	rows, err := db.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewInternalError("GetAllProperties", err)
	}
	defer rows.Close()

	listings := []model.PropertyListing{}
	for rows.Next() {
		var l model.PropertyListing
		dest := append(propertyScanTargets(&l.Property), &l.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewInternalError("GetAllProperties: scan", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("GetAllProperties: rows", err)
	}
	return listings, nil
}

// AddProperty 新增房源並回傳含 id 的完整資料列
func AddProperty(ctx context.Context, db database.DB, p *model.Property) (*model.Property, error) {
	sql, args, err := buildAddPropertyQuery(p)
	if err != nil {
		return nil, apperrors.NewInternalError("AddProperty: build query", err)
	}

	created := &model.Property{}
	if err := db.QueryRow(ctx, sql, args...).Scan(propertyScanTargets(created)...); err != nil {
		return nil, apperrors.NewInternalError("AddProperty", err)
	}
	return created, nil
}

func buildAddPropertyQuery(p *model.Property) (string, []any, error) {
	return pgDialect.Insert("properties").
		Prepared(true).
		Cols(propertyInsertColumns...).
		Vals(goqu.Vals{
			p.OwnerID,
			p.Title,
			p.Description,
			p.ThumbnailPhotoURL,
			p.CoverPhotoURL,
			p.CostPerNight,
			p.ParkingSpaces,
			p.NumberOfBathrooms,
			p.NumberOfBedrooms,
			p.Country,
			p.Street,
			p.City,
			p.Province,
			p.PostCode,
		}).
		Returning(propertyReturningColumns...).
		ToSQL()
}
