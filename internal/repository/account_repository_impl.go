package repository

import (
	"context"
	"errors"

	"lifeline-qr-server/internal/domain/entity"
	domainRepo "lifeline-qr-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	return db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByRole(ctx context.Context, db *gorm.DB, role string) ([]entity.Account, error) {
	var accounts []entity.Account
	err := db.WithContext(ctx).Where("role = ?", role).Order("created_at DESC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) UpdateColumns(ctx context.Context, db *gorm.DB, id uuid.UUID, columns map[string]interface{}) error {
	return db.WithContext(ctx).Model(&entity.Account{}).Where("id = ?", id).Updates(columns).Error
}

func (r *accountRepository) UpdatePassword(ctx context.Context, db *gorm.DB, id uuid.UUID, encoded string) error {
	return db.WithContext(ctx).Model(&entity.Account{}).Where("id = ?", id).Update("password", encoded).Error
}

func (r *accountRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Account{}).Error
}
