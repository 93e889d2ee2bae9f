package store

import (
	"context"

	"lightbnb/internal/apperrors"
	"lightbnb/internal/database"
	"lightbnb/internal/model"
)

const reservationsQuery = `
SELECT reservations.id, reservations.guest_id, reservations.property_id,
       reservations.start_date, reservations.end_date,
       ` + propertyColumns + `,
       avg(property_reviews.rating) AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
  AND reservations.start_date > now()::date
GROUP BY properties.id, reservations.id
ORDER BY reservations.start_date
LIMIT $2`

// GetAllReservations 列出訪客尚未開始的預約，依入住日排序
func GetAllReservations(ctx context.Context, db database.DB, guestID int, limit int) ([]model.ReservationListing, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := db.Query(ctx, reservationsQuery, guestID, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("GetAllReservations", err)
	}
	defer rows.Close()

	listings := []model.ReservationListing{}
	for rows.Next() {
		var l model.ReservationListing
		dest := []any{
			&l.ID,
			&l.GuestID,
			&l.PropertyID,
			&l.StartDate,
			&l.EndDate,
		}
		dest = append(dest, propertyScanTargets(&l.Property)...)
		dest = append(dest, &l.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewInternalError("GetAllReservations: scan", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("GetAllReservations: rows", err)
	}
	return listings, nil
}
