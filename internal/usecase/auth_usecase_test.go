package usecase

import (
	"context"
	"testing"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
	"lifeline-qr-server/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func storedAccount(plaintext string) *entity.Account {
	return &entity.Account{
		ID:       uuid.New(),
		Role:     entity.RolePatient,
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: password.Encode(plaintext),
	}
}

func TestLoginMatchesStoredEncoding(t *testing.T) {
	repo := &fakeAccountRepo{
		findByEmailFn: func(_ context.Context, _ *gorm.DB, email string) (*entity.Account, error) {
			require.Equal(t, "asha@example.com", email)
			return storedAccount("secret123"), nil
		},
	}
	uc := NewAuthUsecase(nil, silentLogger(), repo)

	resp, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: password.Encode("secret123"),
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.Email)
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	repo := &fakeAccountRepo{
		findByEmailFn: func(context.Context, *gorm.DB, string) (*entity.Account, error) {
			return storedAccount("secret123"), nil
		},
	}
	uc := NewAuthUsecase(nil, silentLogger(), repo)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: password.Encode("wrong"),
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	repo := &fakeAccountRepo{
		findByEmailFn: func(context.Context, *gorm.DB, string) (*entity.Account, error) {
			return nil, nil
		},
	}
	uc := NewAuthUsecase(nil, silentLogger(), repo)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: password.Encode("anything"),
	})

	// Account enumeration is not possible: unknown email and wrong
	// password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordStoresEncodedTemp(t *testing.T) {
	account := storedAccount("old-password")
	var storedEncoding string
	repo := &fakeAccountRepo{
		findByEmailFn: func(context.Context, *gorm.DB, string) (*entity.Account, error) {
			return account, nil
		},
		updatePasswordFn: func(_ context.Context, _ *gorm.DB, id uuid.UUID, encoded string) error {
			require.Equal(t, account.ID, id)
			storedEncoding = encoded
			return nil
		},
	}
	uc := NewAuthUsecase(nil, silentLogger(), repo)

	temp, err := uc.ResetPassword(context.Background(), "asha@example.com")

	require.NoError(t, err)
	assert.Regexp(t, `^Temp\d{4}$`, temp)
	// The plaintext handed back must log in against what was stored.
	assert.True(t, password.Verify(temp, storedEncoding))
}

func TestResetPasswordUnknownEmailErr(t *testing.T) {
	repo := &fakeAccountRepo{
		findByEmailFn: func(context.Context, *gorm.DB, string) (*entity.Account, error) {
			return nil, nil
		},
	}
	uc := NewAuthUsecase(nil, silentLogger(), repo)

	_, err := uc.ResetPassword(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrEmailNotFound)
}
