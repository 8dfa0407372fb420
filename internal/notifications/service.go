package notifications

import (
	"context"

	"adventura/pkg/logger"

	"github.com/google/uuid"
)

// Service emits user notifications. Emission is best-effort: a failed
// publish is logged and swallowed so it can never fail a booking request.
type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, title, description, icon string)
	Close() error
}

type service struct {
	producer Producer
	log      *logger.Logger
}

// NewService creates an emitter backed by the given producer. A nil producer
// yields a no-op emitter, used when Kafka is disabled.
func NewService(producer Producer) Service {
	return &service{
		producer: producer,
		log:      logger.GetDefault(),
	}
}

func (s *service) Notify(ctx context.Context, userID uuid.UUID, title, description, icon string) {
	if s.producer == nil {
		return
	}

	notification := NewNotification(userID, title, description, icon)
	if err := s.producer.Publish(notification); err != nil {
		s.log.LogNotificationFailure(ctx, userID.String(), err)
	}
}

func (s *service) Close() error {
	if s.producer == nil {
		return nil
	}
	return s.producer.Close()
}
