package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"lightbnb/internal/apperrors"
	"lightbnb/internal/cache"
	"lightbnb/internal/database"
	"lightbnb/internal/middleware"
	"lightbnb/internal/model"
	"lightbnb/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct{ v *validator.Validate }

func (tv *testValidator) Validate(i any) error { return tv.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func newFormCtx(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context, userID int, jti string) {
	c.Set(middleware.ContextUserKey, &service.CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
}

func restore(t *testing.T) {
	origHash, origAuth, origIssue := hashPassword, authenticateUser, issueAccessToken
	origAdd, origByEmail, origByID, origRevoke := addUser, getUserWithEmail, getUserWithID, revokeToken
	t.Cleanup(func() {
		hashPassword, authenticateUser, issueAccessToken = origHash, origAuth, origIssue
		addUser, getUserWithEmail, getUserWithID, revokeToken = origAdd, origByEmail, origByID, origRevoke
	})
}

func TestCreateUserHandler(t *testing.T) {
	e := newEcho()
	db := &database.FakeDB{}
	valid := url.Values{"name": {"Alice"}, "email": {"Alice@Example.com"}, "password": {"secret1"}}

	t.Run("validation error", func(t *testing.T) {
		restore(t)
		c, rec := newFormCtx(e, http.MethodPost, "/users", url.Values{"name": {"Alice"}})
		require.NoError(t, CreateUserHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		restore(t)
		hashPassword = func(string) (string, error) { return "hash", nil }
		addUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			return nil, apperrors.NewConflictError("email already registered", errors.New("23505"))
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users", valid)
		require.NoError(t, CreateUserHandler(db)(c))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "email already registered")
	})

	t.Run("store failure", func(t *testing.T) {
		restore(t)
		hashPassword = func(string) (string, error) { return "hash", nil }
		addUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			return nil, apperrors.NewInternalError("AddUser", errors.New("down"))
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users", valid)
		require.NoError(t, CreateUserHandler(db)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		restore(t)
		hashPassword = func(p string) (string, error) { return "hash:" + p, nil }
		var got *model.User
		addUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			got = u
			out := *u
			out.ID = 7
			return &out, nil
		}
		issueAccessToken = func(u model.User, ttl time.Duration) (string, error) {
			require.Equal(t, 7, u.ID)
			require.Equal(t, service.AccessTokenTTL, ttl)
			return "tok", nil
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users", valid)
		require.NoError(t, CreateUserHandler(db)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", got.Email)
		require.Equal(t, "hash:secret1", got.Password)
		require.Contains(t, rec.Body.String(), `"access_token":"tok"`)
		require.NotContains(t, rec.Body.String(), "hash:")
	})
}

func TestLoginHandler(t *testing.T) {
	e := newEcho()
	db := &database.FakeDB{}
	form := url.Values{"email": {"ALICE@example.com"}, "password": {"secret1"}}
	alice := &model.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "hash"}

	t.Run("unknown email", func(t *testing.T) {
		restore(t)
		getUserWithEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			require.Equal(t, "alice@example.com", email)
			return nil, nil
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users/login", form)
		require.NoError(t, LoginHandler(db)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		restore(t)
		getUserWithEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) { return alice, nil }
		authenticateUser = func(model.User, string) error { return service.ErrInvalidCredentials }
		c, rec := newFormCtx(e, http.MethodPost, "/users/login", form)
		require.NoError(t, LoginHandler(db)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		restore(t)
		getUserWithEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, apperrors.NewInternalError("GetUserWithEmail", errors.New("down"))
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users/login", form)
		require.NoError(t, LoginHandler(db)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		restore(t)
		getUserWithEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) { return alice, nil }
		authenticateUser = func(model.User, string) error { return nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "tok", nil }
		c, rec := newFormCtx(e, http.MethodPost, "/users/login", form)
		require.NoError(t, LoginHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"access_token":"tok"`)
		require.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
	})
}

func TestLogoutHandler(t *testing.T) {
	e := newEcho()
	cch := &cache.FakeCache{}

	t.Run("missing claims", func(t *testing.T) {
		restore(t)
		c, rec := newFormCtx(e, http.MethodPost, "/users/logout", nil)
		require.NoError(t, LogoutHandler(cch)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoke failure", func(t *testing.T) {
		restore(t)
		revokeToken = func(ctx context.Context, c cache.Cache, jti string, ttl time.Duration) error {
			return errors.New("redis down")
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users/logout", nil)
		withClaims(c, 1, "jti-1")
		require.NoError(t, LogoutHandler(cch)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		restore(t)
		var gotJTI string
		var gotTTL time.Duration
		revokeToken = func(ctx context.Context, c cache.Cache, jti string, ttl time.Duration) error {
			gotJTI, gotTTL = jti, ttl
			return nil
		}
		c, rec := newFormCtx(e, http.MethodPost, "/users/logout", nil)
		withClaims(c, 1, "jti-1")
		require.NoError(t, LogoutHandler(cch)(c))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "jti-1", gotJTI)
		require.Greater(t, gotTTL, 59*time.Minute)
	})
}

func TestGetMeHandler(t *testing.T) {
	e := newEcho()
	db := &database.FakeDB{}

	t.Run("not found", func(t *testing.T) {
		restore(t)
		getUserWithID = func(ctx context.Context, db database.DB, id int) (*model.User, error) { return nil, nil }
		c, rec := newFormCtx(e, http.MethodGet, "/users/me", nil)
		withClaims(c, 3, "j")
		require.NoError(t, GetMeHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		restore(t)
		getUserWithID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			return &model.User{ID: id, Name: "Bob", Email: "bob@example.com", Password: "hash"}, nil
		}
		c, rec := newFormCtx(e, http.MethodGet, "/users/me", nil)
		withClaims(c, 3, "j")
		require.NoError(t, GetMeHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":3`)
		require.NotContains(t, rec.Body.String(), "hash")
	})
}
