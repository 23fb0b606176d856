package service

import (
	"context"
	"errors"
	"time"

	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

func notFoundAs(err error, target error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return target
	}
	return err
}

// now returns the current time at the millisecond precision MongoDB keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func publishEvent(ctx context.Context, publisher EventPublisher, eventType string, key string, data interface{}) {
	if err := publisher.Publish(ctx, eventType, key, data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PublishEvent").Str("event_type", eventType).Msg("")
	}
}
