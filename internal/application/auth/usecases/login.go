package usecases

import (
	"context"
	"errors"

	"backoffice/internal/domain/user"
	vo "backoffice/internal/domain/user/valueobjects"
	"backoffice/internal/infrastructure/auth"
	apperrors "backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
}

// TokenIssuer abstracts session token creation.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// PasswordVerifier abstracts password hash comparison.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

type LoginUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	hasher   PasswordVerifier
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	tokens TokenIssuer,
	hasher PasswordVerifier,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute authenticates by email and password and returns a session token.
// An unknown email and a wrong password produce the same error so callers
// cannot probe which accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewBadRequestError("Email and password required")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		uc.logger.Infow("login rejected: malformed email")
		return nil, apperrors.NewInvalidCredentialsError()
	}

	u, err := uc.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}
	if u == nil {
		uc.logger.Infow("login rejected: unknown email")
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected: bad password", "user_id", u.ID())
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Issue(u.ID())
	if err != nil {
		if errors.Is(err, auth.ErrNoSecret) {
			return nil, apperrors.NewConfigurationError("Invalid JWT configuration")
		}
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &LoginResult{Token: token}, nil
}
