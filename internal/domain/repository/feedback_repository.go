package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, db *gorm.DB, feedback *entity.Feedback) error
}
