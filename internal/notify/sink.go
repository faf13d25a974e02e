package notify

import (
	"context"
	"errors"

	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

// Sink принимает одно уведомление для одного получателя.
type Sink interface {
	Send(ctx context.Context, n *model.Notification) error
}

// MultiSink рассылает уведомление во все синки по порядку.
// Ошибка одного синка не мешает остальным, ошибки склеиваются.
type MultiSink []Sink

func (m MultiSink) Send(ctx context.Context, n *model.Notification) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
