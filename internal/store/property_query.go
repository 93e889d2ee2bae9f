package store

import (
	"fmt"
	"strings"

	"lightbnb/internal/model"
)

// DefaultLimit 為未指定筆數時的查詢上限
const DefaultLimit = 10

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
       properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
       properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
       properties.country, properties.street, properties.city, properties.province, properties.post_code`

// PropertyFilter 房源搜尋的選用條件，City 為空字串或指標為 nil 代表未提供
type PropertyFilter struct {
	City                 string
	MinimumPricePerNight *int64
	MaximumPricePerNight *int64
	OwnerID              *int64
	MinimumRating        *float64
}

// Query 為 SQL 與其位置參數，$n 對應 Args[n-1]
type Query struct {
	SQL  string
	Args []any
}

// predicate 將條件樣板與取值函式配對，樣板中的 %d 填入 placeholder 編號
type predicate struct {
	template string
	value    func(PropertyFilter) (any, bool)
}

// WHERE 條件，依綁定順序排列
var propertyPredicates = []predicate{
	{"properties.city LIKE $%d", func(f PropertyFilter) (any, bool) {
		if f.City == "" {
			return nil, false
		}
		return "%" + f.City + "%", true
	}},
	{"properties.cost_per_night >= $%d", int64Value(func(f PropertyFilter) *int64 { return f.MinimumPricePerNight })},
	{"properties.cost_per_night <= $%d", int64Value(func(f PropertyFilter) *int64 { return f.MaximumPricePerNight })},
	{"properties.owner_id = $%d", int64Value(func(f PropertyFilter) *int64 { return f.OwnerID })},
}

// 平均評分是聚合結果，只能放在 GROUP BY 之後的 HAVING
var ratingPredicate = predicate{"avg(property_reviews.rating) >= $%d", func(f PropertyFilter) (any, bool) {
	if f.MinimumRating == nil {
		return nil, false
	}
	return *f.MinimumRating, true
}}

func int64Value(field func(PropertyFilter) *int64) func(PropertyFilter) (any, bool) {
	return func(f PropertyFilter) (any, bool) {
		v := field(f)
		if v == nil {
			return nil, false
		}
		return *v, true
	}
}

type queryBuilder struct {
	lines []string
	args  []any
}

func (b *queryBuilder) line(s string) {
	b.lines = append(b.lines, s)
}

// bind 先推入 v，條件再以新的參數長度作為 placeholder 編號
func (b *queryBuilder) bind(clause string, v any) {
	b.args = append(b.args, v)
	b.line(fmt.Sprintf(clause, len(b.args)))
}

func (b *queryBuilder) query() Query {
	return Query{SQL: strings.Join(b.lines, "\n"), Args: b.args}
}

// BuildPropertyQuery 依條件組出房源查詢，結果依每晚價格由低到高排序
// limit <= 0 時使用 DefaultLimit
func BuildPropertyQuery(filter PropertyFilter, limit int) Query {
	if limit <= 0 {
		limit = DefaultLimit
	}

	b := &queryBuilder{}
	b.line("SELECT " + propertyColumns + ",")
	b.line("       avg(property_reviews.rating) AS average_rating")
	b.line("FROM properties")
	b.line("JOIN property_reviews ON properties.id = property_reviews.property_id")
	b.line("WHERE TRUE")
	for _, p := range propertyPredicates {
		if v, ok := p.value(filter); ok {
			b.bind("AND "+p.template, v)
		}
	}
	b.line("GROUP BY properties.id")
	if v, ok := ratingPredicate.value(filter); ok {
		b.bind("HAVING "+ratingPredicate.template, v)
	}
	b.line("ORDER BY properties.cost_per_night")
	b.bind("LIMIT $%d", limit)
	return b.query()
}

func propertyScanTargets(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
	}
}
