package store

import (
	"context"
	"errors"

	"lightbnb/internal/apperrors"
	"lightbnb/internal/database"
	"lightbnb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE unique_violation
const uniqueViolation = "23505"

// GetUserWithEmail 以 email 查詢使用者；查無資料時回傳 (nil, nil)
func GetUserWithEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password
		 FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row, "GetUserWithEmail")
}

// GetUserWithID 以 id 查詢使用者；查無資料時回傳 (nil, nil)
func GetUserWithID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password
		 FROM users WHERE id = $1`,
		userID,
	)
	return scanUser(row, "GetUserWithID")
}

// AddUser 新增使用者並回傳含 id 的資料列。email 重複由資料庫約束判定。
func AddUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, password`,
		u.Name,
		u.Email,
		u.Password,
	)
	created := &model.User{}
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.NewConflictError("AddUser: email already registered", err)
		}
		return nil, apperrors.NewInternalError("AddUser", err)
	}
	return created, nil
}

func scanUser(row pgx.Row, op string) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError(op, err)
	}
	return u, nil
}
