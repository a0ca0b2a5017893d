package usecase

import (
	"context"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
	"lifeline-qr-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FeedbackUsecase interface {
	Submit(ctx context.Context, req *dto.FeedbackRequest) error
}

type feedbackUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackUsecase(db *gorm.DB, log *logrus.Logger, feedbackRepo repository.FeedbackRepository) FeedbackUsecase {
	return &feedbackUsecase{
		db:           db,
		log:          log,
		feedbackRepo: feedbackRepo,
	}
}

func (u *feedbackUsecase) Submit(ctx context.Context, req *dto.FeedbackRequest) error {
	feedback := &entity.Feedback{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := u.feedbackRepo.Create(ctx, u.db, feedback); err != nil {
		u.log.Warnf("Failed to store feedback: %+v", err)
		return err
	}
	return nil
}
