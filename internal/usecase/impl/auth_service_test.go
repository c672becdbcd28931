package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tastebook/config"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/infra/auth"
	"tastebook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, repo *fakeAccountRepository) usecase.AuthUsecase {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
			TokenTTL:   time.Hour,
		},
	}
	cfg.SecretKey.Token = "test_session_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthService(AuthServiceParams{
		AccountRepo:  repo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newFakeAccountRepository()
	service := newTestAuthService(t, repo)
	ctx := context.Background()

	err := service.Register(ctx, &usecase.RegisterInput{Username: "Bob", Password: "hunter22"})
	require.NoError(t, err)

	// Stored under the normalized username, never as plaintext
	stored := repo.byUsername["bob"]
	require.NotNil(t, stored)
	assert.Equal(t, "bob", stored.Username)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)

	// Login normalizes the same way registration did
	output, err := service.Login(ctx, &usecase.LoginInput{Username: "  BOB ", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, "bob", output.Username)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	repo := newFakeAccountRepository()
	service := newTestAuthService(t, repo)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "hunter22"}))

	// Same username modulo case and whitespace must conflict
	err := service.Register(ctx, &usecase.RegisterInput{Username: " Bob ", Password: "other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestAuthService_RegisterEmptyFields(t *testing.T) {
	repo := newFakeAccountRepository()
	service := newTestAuthService(t, repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"empty username", usecase.RegisterInput{Username: "", Password: "hunter22"}},
		{"whitespace username", usecase.RegisterInput{Username: "   ", Password: "hunter22"}},
		{"empty password", usecase.RegisterInput{Username: "bob", Password: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.Register(ctx, &tc.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAccountRepository()
	service := newTestAuthService(t, repo)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "hunter22"}))

	// Unknown username and wrong password surface the same error
	_, unknownErr := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "hunter22"})
	_, wrongErr := service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "wrong"})

	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Authorize(t *testing.T) {
	repo := newFakeAccountRepository()
	service := newTestAuthService(t, repo)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "hunter22"}))
	output, err := service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "hunter22"})
	require.NoError(t, err)

	account, err := service.Authorize(ctx, output.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", account.Username)

	// Garbage token
	_, err = service.Authorize(ctx, "not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	// Valid token whose account has since been removed
	repo.delete(account.ID)
	_, err = service.Authorize(ctx, output.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_RegisterStoreFailure(t *testing.T) {
	repo := newFakeAccountRepository()
	repo.createErr = errors.New("connection refused")
	service := newTestAuthService(t, repo)

	err := service.Register(context.Background(), &usecase.RegisterInput{Username: "bob", Password: "hunter22"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}
