package notify

import (
	"context"
	"fmt"

	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
)

// GormSink сохраняет уведомление в таблицу notifications (входящие пользователя).
type GormSink struct {
	repo repository.NotificationRepository
}

func NewGormSink(repo repository.NotificationRepository) *GormSink {
	return &GormSink{repo: repo}
}

func (s *GormSink) Send(ctx context.Context, n *model.Notification) error {
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	return nil
}
