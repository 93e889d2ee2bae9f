// File: internal/model/reservation.go
package model

import "time"

type Reservation struct {
	ID         int       `db:"id" json:"id"`
	GuestID    int       `db:"guest_id" json:"guest_id"`
	PropertyID int       `db:"property_id" json:"property_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}

// ReservationListing 為訪客預約列表的一列，房源放在 property 底下避免 id 衝突
type ReservationListing struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
}
