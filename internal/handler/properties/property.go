package properties

import (
	"fmt"
	"strconv"

	"lightbnb/internal/api"
	"lightbnb/internal/store"
)

// DefaultSearchLimit 為房源搜尋頁未帶 limit 時的筆數
const DefaultSearchLimit = 20

var (
	getAllProperties = store.GetAllProperties
	addProperty      = store.AddProperty
)

type listResponse struct {
	Properties any `json:"properties"`
}

// toFilter 將 query string 轉為型別化的篩選條件，空字串視為未提供
func toFilter(req api.PropertySearchRequest) (store.PropertyFilter, int, error) {
	f := store.PropertyFilter{City: req.City}
	var err error
	if f.MinimumPricePerNight, err = parseInt64("minimum_price_per_night", req.MinimumPricePerNight); err != nil {
		return f, 0, err
	}
	if f.MaximumPricePerNight, err = parseInt64("maximum_price_per_night", req.MaximumPricePerNight); err != nil {
		return f, 0, err
	}
	if f.OwnerID, err = parseInt64("owner_id", req.OwnerID); err != nil {
		return f, 0, err
	}
	if req.MinimumRating != "" {
		v, err := strconv.ParseFloat(req.MinimumRating, 64)
		if err != nil {
			return f, 0, fmt.Errorf("minimum_rating must be a number")
		}
		f.MinimumRating = &v
	}

	limit := DefaultSearchLimit
	if req.Limit != "" {
		n, err := strconv.Atoi(req.Limit)
		if err != nil || n <= 0 {
			return f, 0, fmt.Errorf("limit must be a positive integer")
		}
		limit = n
	}
	return f, limit, nil
}

func parseInt64(name, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}
