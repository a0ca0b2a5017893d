package usecase

import (
	"context"
	"errors"
	"fmt"

	"lifeline-qr-server/internal/converter"
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
	"lifeline-qr-server/internal/domain/repository"
	"lifeline-qr-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAccountNotFound        = errors.New("account not found")
	ErrNoUpdateData           = errors.New("no data to update")
	ErrFieldNotAllowed        = errors.New("field cannot be updated")
)

// updatableAccountColumns is the allow-list for profile updates. The caller
// addresses columns by name; anything outside this set is rejected before a
// statement is built. Password and role are deliberately absent.
var updatableAccountColumns = map[string]bool{
	"name":                true,
	"age":                 true,
	"email":               true,
	"blood_group":         true,
	"allergies":           true,
	"medical_conditions":  true,
	"regular_medications": true,
	"address":             true,
	"emergency_contacts":  true,
	"specialization":      true,
	"experience":          true,
	"hospital":            true,
	"contact_number":      true,
	"working_hours":       true,
}

type AccountUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisteredAccount, error)
	GetByEmail(ctx context.Context, email string) (*dto.AccountResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AccountResponse, error)
	ListByRole(ctx context.Context, role string) ([]dto.AccountResponse, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	qrRepo      repository.QRMappingRepository
	qrCache     *service.QRCache
}

func NewAccountUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	qrRepo repository.QRMappingRepository,
	qrCache *service.QRCache,
) AccountUsecase {
	return &accountUsecase{
		db:          db,
		log:         log,
		accountRepo: accountRepo,
		qrRepo:      qrRepo,
		qrCache:     qrCache,
	}
}

// Register creates the account and, for patients, its QR mapping in a single
// transaction so a failed mapping insert cannot leave an orphaned account.
func (u *accountUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisteredAccount, error) {
	if !entity.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	account := &entity.Account{
		ID:       uuid.New(),
		Role:     req.Role,
		Name:     req.Name,
		Age:      req.Age,
		Email:    req.Email,
		Password: req.Password,
	}

	switch req.Role {
	case entity.RolePatient:
		account.BloodGroup = req.BloodGroup
		account.Allergies = req.Allergies
		account.MedicalConditions = req.MedicalConditions
		account.RegularMedications = req.RegularMedications
		account.Address = req.Address
		account.EmergencyContacts = req.EmergencyContacts
	case entity.RoleDoctor:
		account.Specialization = req.Specialization
		account.Experience = req.Experience
		account.Hospital = req.Hospital
		account.ContactNumber = req.ContactNumber
		account.WorkingHours = req.WorkingHours
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.accountRepo.Create(ctx, tx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	if account.IsPatient() {
		mapping := &entity.QRMapping{
			ID:        uuid.New(),
			PatientID: account.ID,
			QRCode:    uuid.New(),
		}
		if err := u.qrRepo.Create(ctx, tx, mapping); err != nil {
			u.log.Warnf("Failed to create QR mapping: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit registration: %+v", err)
		return nil, err
	}

	return converter.AccountToRegistered(account), nil
}

func (u *accountUsecase) GetByEmail(ctx context.Context, email string) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return converter.AccountToResponse(account), nil
}

func (u *accountUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return converter.AccountToResponse(account), nil
}

func (u *accountUsecase) ListByRole(ctx context.Context, role string) ([]dto.AccountResponse, error) {
	if !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	accounts, err := u.accountRepo.FindByRole(ctx, u.db, role)
	if err != nil {
		u.log.Warnf("Failed to list accounts by role: %+v", err)
		return nil, err
	}
	return converter.AccountsToResponses(accounts), nil
}

// Update rewrites only allow-listed columns. Password and id are stripped
// silently (the reset flow owns the password column); any other unknown key
// is rejected outright.
func (u *accountUsecase) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "password")

	if len(fields) == 0 {
		return ErrNoUpdateData
	}

	for column := range fields {
		if !updatableAccountColumns[column] {
			return fmt.Errorf("%w: %s", ErrFieldNotAllowed, column)
		}
	}

	if err := u.accountRepo.UpdateColumns(ctx, u.db, id, fields); err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to update account: %+v", err)
		return err
	}

	u.qrCache.Invalidate(ctx, id)
	return nil
}

// Delete removes an account; the QR mapping, medical records and orders go
// with it through the foreign-key cascade.
func (u *accountUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.accountRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete account: %+v", err)
		return err
	}

	u.qrCache.Invalidate(ctx, id)
	return nil
}
