package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/user"
	vo "backoffice/internal/domain/user/valueobjects"
	"backoffice/internal/infrastructure/auth"
	apperrors "backoffice/internal/shared/errors"
)

func testUser(t *testing.T, id uint) *user.User {
	t.Helper()
	email, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)
	return user.ReconstructUser(id, "Alice", email, "$2a$04$hash", time.Now(), time.Now())
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return testUser(t, 7), nil
		},
	}
	mockTokens := &mockTokenIssuer{
		IssueFunc: func(userID uint) (string, error) {
			assert.Equal(t, uint(7), userID)
			return "signed-token", nil
		},
	}

	uc := NewLoginUseCase(mockRepo, mockTokens, &mockHasher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
}

// The stored email is normalized at signup, so the login lookup must be
// normalized the same way or mixed-case credentials never match.
func TestLoginUseCase_Execute_MixedCaseEmail(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return testUser(t, 7), nil
		},
	}
	mockTokens := &mockTokenIssuer{
		IssueFunc: func(userID uint) (string, error) {
			return "signed-token", nil
		},
	}

	uc := NewLoginUseCase(mockRepo, mockTokens, &mockHasher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "  Alice@Example.COM ",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		command LoginCommand
	}{
		{name: "missing email", command: LoginCommand{Password: "hunter2"}},
		{name: "missing password", command: LoginCommand{Email: "alice@example.com"}},
		{name: "missing both", command: LoginCommand{}},
	}

	uc := NewLoginUseCase(&mockUserRepository{}, &mockTokenIssuer{}, &mockHasher{}, &mockLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.command)
			require.Error(t, err)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "Email and password required", appErr.Message)
		})
	}
}

// Unknown emails and wrong passwords must be indistinguishable to callers.
func TestLoginUseCase_Execute_InvalidCredentials(t *testing.T) {
	unknownEmail := NewLoginUseCase(
		&mockUserRepository{},
		&mockTokenIssuer{},
		&mockHasher{},
		&mockLogger{},
	)
	_, errUnknown := unknownEmail.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "hunter2",
	})

	badPassword := NewLoginUseCase(
		&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(t, 1), nil
			},
		},
		&mockTokenIssuer{},
		&mockHasher{
			VerifyFunc: func(password, hash string) error {
				return assert.AnError
			},
		},
		&mockLogger{},
	)
	_, errBadPassword := badPassword.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	for _, err := range []error{errUnknown, errBadPassword} {
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}
	assert.Equal(t, errUnknown.Error(), errBadPassword.Error())
}

func TestLoginUseCase_Execute_NoSecret(t *testing.T) {
	uc := NewLoginUseCase(
		&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(t, 1), nil
			},
		},
		&mockTokenIssuer{
			IssueFunc: func(userID uint) (string, error) {
				return "", auth.ErrNoSecret
			},
		},
		&mockHasher{},
		&mockLogger{},
	)

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Invalid JWT configuration", appErr.Message)
}
