package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase resolves one known token to one account.
type fakeAuthUsecase struct {
	validToken string
	account    *entity.Account
}

func (f *fakeAuthUsecase) Register(_ context.Context, _ *usecase.RegisterInput) error {
	return nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) Authorize(_ context.Context, token string) (*entity.Account, error) {
	if token != f.validToken {
		return nil, domainerrors.ErrUnauthorized
	}

	return f.account, nil
}

func runAuthenticated(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *entity.Account) {
	t.Helper()

	account := &entity.Account{ID: uuid.New(), Username: "bob"}
	middleware := NewAuthMiddleware(&fakeAuthUsecase{validToken: "good-token", account: account})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *entity.Account
	next := func(c echo.Context) error {
		resolved, _ = c.Get(ContextKeyAccount).(*entity.Account)

		return c.NoContent(http.StatusOK)
	}

	err := middleware.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, resolved
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	rec, resolved := runAuthenticated(t, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, "bob", resolved.Username)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, resolved := runAuthenticated(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, resolved)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, resolved := runAuthenticated(t, "Basic Zm9vOmJhcg==")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, resolved)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	rec, resolved := runAuthenticated(t, "Bearer forged-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, resolved)
}
