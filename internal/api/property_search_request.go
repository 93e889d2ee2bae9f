package api

// PropertySearchRequest 對應房源搜尋的 query string，數值欄位保留原字串由 handler 轉型
// swagger:model api.PropertySearchRequest
type PropertySearchRequest struct {
	City                 string `query:"city"`
	MinimumPricePerNight string `query:"minimum_price_per_night"`
	MaximumPricePerNight string `query:"maximum_price_per_night"`
	OwnerID              string `query:"owner_id"`
	MinimumRating        string `query:"minimum_rating"`
	Limit                string `query:"limit"`
}
