package usecases

import (
	"context"

	"backoffice/internal/domain/user"
	vo "backoffice/internal/domain/user/valueobjects"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

// UpdateUserCommand carries a partial update: nil fields are left untouched.
type UpdateUserCommand struct {
	ID       uint
	Name     *string
	Email    *string
	Password *string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserData, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.ID)

	u, err := uc.userRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find user", "user_id", cmd.ID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Name != nil {
		if err := u.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error(), "name")
		}
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), "email")
		}
		// Keeping the current address is always allowed; only collisions
		// with other accounts are rejected.
		taken, err := uc.userRepo.ExistsByEmail(ctx, email.String(), u.ID())
		if err != nil {
			uc.logger.Errorw("failed to check email uniqueness", "error", err)
			return nil, err
		}
		if taken {
			return nil, errors.NewValidationError("email has already been taken", "email")
		}
		u.UpdateEmail(email)
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 4 {
			return nil, errors.NewValidationError("password must be at least 4 characters", "password")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		if err := u.UpdatePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error(), "password")
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.ID, "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError("email has already been taken", "email")
		}
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	data := toUserData(u)
	return &data, nil
}
