package usecases

import (
	"context"

	"backoffice/internal/domain/user"
	vo "backoffice/internal/domain/user/valueobjects"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserData, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "email")
	}

	taken, err := uc.userRepo.ExistsByEmail(ctx, email.String(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	}
	if taken {
		return nil, errors.NewValidationError("email has already been taken", "email")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	newUser, err := user.NewUser(cmd.Name, email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "name")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError("email has already been taken", "email")
		}
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", newUser.ID())
	data := toUserData(newUser)
	return &data, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required", "name")
	}
	if len(cmd.Name) > 255 {
		return errors.NewValidationError("name exceeds maximum length of 255 characters", "name")
	}
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required", "email")
	}
	if len(cmd.Password) == 0 {
		return errors.NewValidationError("password is required", "password")
	}
	if len(cmd.Password) < 4 {
		return errors.NewValidationError("password must be at least 4 characters", "password")
	}
	return nil
}
