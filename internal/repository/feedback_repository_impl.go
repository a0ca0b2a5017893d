package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"
	domainRepo "lifeline-qr-server/internal/domain/repository"

	"gorm.io/gorm"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(ctx context.Context, db *gorm.DB, feedback *entity.Feedback) error {
	return db.WithContext(ctx).Create(feedback).Error
}
