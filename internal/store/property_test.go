package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lightbnb/internal/apperrors"
	"lightbnb/internal/database"
	"lightbnb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func sampleProperty() model.Property {
	return model.Property{
		ID:                1,
		OwnerID:           3,
		Title:             "Speed lamp",
		Description:       "description",
		ThumbnailPhotoURL: "https://images.example.com/thumb.jpg",
		CoverPhotoURL:     "https://images.example.com/cover.jpg",
		CostPerNight:      93061,
		ParkingSpaces:     6,
		NumberOfBathrooms: 4,
		NumberOfBedrooms:  8,
		Country:           "Canada",
		Street:            "536 Namsub Highway",
		City:              "Sotboske",
		Province:          "Quebec",
		PostCode:          "28142",
	}
}

func TestGetAllProperties(t *testing.T) {
	p := sampleProperty()

	t.Run("success", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{
			append(propertyValues(p), 4.25),
			append(propertyValues(p), nil),
		}}
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL, gotArgs = sql, args
				return rows, nil
			},
		}
		filter := PropertyFilter{City: "Sotb", MinimumRating: float64p(4)}
		list, err := GetAllProperties(context.Background(), db, filter, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, p, list[0].Property)
		require.InDelta(t, 4.25, *list[0].AverageRating, 0.0001)
		require.Nil(t, list[1].AverageRating)
		require.True(t, rows.closed)

		want := BuildPropertyQuery(filter, 10)
		require.Equal(t, want.SQL, gotSQL)
		require.Equal(t, want.Args, gotArgs)
	})

	t.Run("empty result", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
		}
		list, err := GetAllProperties(context.Background(), db, PropertyFilter{}, 0)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("syntax") },
		}
		_, err := GetAllProperties(context.Background(), db, PropertyFilter{}, 10)
		require.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})

	t.Run("scan error", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{propertyValues(p)}, scanErr: errors.New("scan")}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := GetAllProperties(context.Background(), db, PropertyFilter{}, 10)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		rows := &fakeRows{err: errors.New("broken pipe")}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := GetAllProperties(context.Background(), db, PropertyFilter{}, 10)
		require.Error(t, err)
	})
}

func TestBuildAddPropertyQuery(t *testing.T) {
	p := sampleProperty()
	p.Description = ""
	sql, args, err := buildAddPropertyQuery(&p)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(sql, `INSERT INTO "properties" ("owner_id", "title", "description", `))
	require.Contains(t, sql, `"province", "post_code") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`)
	require.Contains(t, sql, `RETURNING "id", "owner_id"`)
	// goqu 以 int64 綁定整數參數
	require.Equal(t, []any{
		int64(3), "Speed lamp", "", "https://images.example.com/thumb.jpg", "https://images.example.com/cover.jpg",
		int64(93061), int64(6), int64(4), int64(8), "Canada", "536 Namsub Highway", "Sotboske", "Quebec", "28142",
	}, args)
}

func TestAddProperty(t *testing.T) {
	p := sampleProperty()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Len(t, args, 14)
				return &fakeRow{vals: propertyValues(p)}
			},
		}
		input := p
		input.ID = 0
		created, err := AddProperty(context.Background(), db, &input)
		require.NoError(t, err)
		require.Equal(t, &p, created)
	})

	t.Run("error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("fk violation")}
			},
		}
		created, err := AddProperty(context.Background(), db, &p)
		require.Nil(t, created)
		require.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})
}
