package impl

import (
	"context"
	"log/slog"
	"strings"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/domain/service"
	"tastebook/internal/errors"
	"tastebook/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. Passwords are hashed
// explicitly here and only here; neither plaintext nor hash is ever logged
// or returned.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account under the normalized username. The
// existence check gives the common case a friendly early answer; the unique
// index in the account store is what actually closes the concurrent
// registration race, surfacing as the same conflict error.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	username := normalizeUsername(input.Username)
	if username == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
	}
	if input.Password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password must not be empty")
	}

	_, err := srv.accountRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.logger.Warn("Registration rejected, username taken", slog.String("username", username))

		return errors.WithStack(domainerrors.ErrUsernameTaken)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	account := &entity.Account{
		Username:     username,
		PasswordHash: hash,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	srv.logger.Info("Account registered", slog.String("username", username))

	return nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords collapse into the same unauthorized error so the
// response does not reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := normalizeUsername(input.Username)

	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login rejected, password mismatch", slog.String("username", username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.Generate(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Debug("Login succeeded", slog.String("username", username))

	return &usecase.LoginOutput{
		Token:    token,
		Username: account.Username,
	}, nil
}

// Authorize verifies a session token and resolves the account it was issued
// for. Any verification failure collapses into unauthorized.
func (srv *authService) Authorize(ctx context.Context, token string) (*entity.Account, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token verification failed")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token account")
	}

	return account, nil
}

// normalizeUsername trims surrounding whitespace and lowercases; the result
// is the uniqueness key of the account store.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
