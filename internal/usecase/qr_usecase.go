package usecase

import (
	"context"
	"errors"

	"lifeline-qr-server/internal/converter"
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/repository"
	"lifeline-qr-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidQRCode     = errors.New("invalid QR code")
	ErrQRMappingNotFound = errors.New("QR mapping not found")
)

type QRUsecase interface {
	// LookupAccount resolves a QR code to its owning account, password
	// stripped. Badge scans hit this without authentication, so results
	// are served from the Redis cache when possible.
	LookupAccount(ctx context.Context, code string) (*dto.AccountResponse, error)
	GetMappingByPatientID(ctx context.Context, patientID uuid.UUID) (*dto.QRMappingResponse, error)
}

type qrUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	qrRepo  repository.QRMappingRepository
	qrCache *service.QRCache
}

func NewQRUsecase(db *gorm.DB, log *logrus.Logger, qrRepo repository.QRMappingRepository, qrCache *service.QRCache) QRUsecase {
	return &qrUsecase{
		db:      db,
		log:     log,
		qrRepo:  qrRepo,
		qrCache: qrCache,
	}
}

func (u *qrUsecase) LookupAccount(ctx context.Context, code string) (*dto.AccountResponse, error) {
	parsed, err := uuid.Parse(code)
	if err != nil {
		// Codes are opaque v4 tokens; anything else can never match.
		return nil, ErrInvalidQRCode
	}

	if account, ok := u.qrCache.GetAccount(ctx, parsed); ok {
		return converter.AccountToResponse(account), nil
	}

	account, err := u.qrRepo.FindAccountByCode(ctx, u.db, parsed)
	if err != nil {
		u.log.Warnf("Failed to resolve QR code: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidQRCode
	}

	u.qrCache.StoreAccount(ctx, parsed, account)
	return converter.AccountToResponse(account), nil
}

func (u *qrUsecase) GetMappingByPatientID(ctx context.Context, patientID uuid.UUID) (*dto.QRMappingResponse, error) {
	mapping, err := u.qrRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find QR mapping: %+v", err)
		return nil, err
	}
	if mapping == nil {
		return nil, ErrQRMappingNotFound
	}
	return converter.QRMappingToResponse(mapping), nil
}
