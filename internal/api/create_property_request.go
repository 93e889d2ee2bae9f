package api

// swagger:model api.CreatePropertyRequest
type CreatePropertyRequest struct {
	Title             string `form:"title" json:"title" validate:"required" example:"Cozy loft"`
	Description       string `form:"description" json:"description" example:"Bright loft near the water"`
	ThumbnailPhotoURL string `form:"thumbnail_photo_url" json:"thumbnail_photo_url" validate:"required,url"`
	CoverPhotoURL     string `form:"cover_photo_url" json:"cover_photo_url" validate:"required,url"`
	CostPerNight      int    `form:"cost_per_night" json:"cost_per_night" validate:"gte=0" example:"12500"`
	ParkingSpaces     int    `form:"parking_spaces" json:"parking_spaces" validate:"gte=0" example:"1"`
	NumberOfBathrooms int    `form:"number_of_bathrooms" json:"number_of_bathrooms" validate:"gte=0" example:"1"`
	NumberOfBedrooms  int    `form:"number_of_bedrooms" json:"number_of_bedrooms" validate:"gte=0" example:"2"`
	Country           string `form:"country" json:"country" validate:"required" example:"Canada"`
	Street            string `form:"street" json:"street" validate:"required" example:"123 Main St"`
	City              string `form:"city" json:"city" validate:"required" example:"Vancouver"`
	Province          string `form:"province" json:"province" validate:"required" example:"BC"`
	PostCode          string `form:"post_code" json:"post_code" validate:"required" example:"V5K 0A1"`
}
