package usecase

import (
	"context"
	"errors"

	"lifeline-qr-server/internal/converter"
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/repository"
	"lifeline-qr-server/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotFound      = errors.New("email not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AccountResponse, error)
	// ResetPassword overwrites the stored encoding with a fresh temporary
	// password and returns the plaintext to the caller. There is no mail
	// channel; handing the temp password back in the response body is the
	// designed (and documented) behavior.
	ResetPassword(ctx context.Context, email string) (string, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	accountRepo repository.AccountRepository
}

func NewAuthUsecase(db *gorm.DB, log *logrus.Logger, accountRepo repository.AccountRepository) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		accountRepo: accountRepo,
	}
}

// Login compares the client-encoded password against the stored value. A
// missing account and a wrong password intentionally produce the same error.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}

	if account == nil || account.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	return converter.AccountToResponse(account), nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, email string) (string, error) {
	account, err := u.accountRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return "", err
	}
	if account == nil {
		return "", ErrEmailNotFound
	}

	tempPassword := password.GenerateTemporary()
	if err := u.accountRepo.UpdatePassword(ctx, u.db, account.ID, password.Encode(tempPassword)); err != nil {
		u.log.Warnf("Failed to reset password: %+v", err)
		return "", err
	}

	return tempPassword, nil
}
