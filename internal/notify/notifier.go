// Package notify forwards accepted contact submissions to the front desk.
package notify

import (
	"context"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// Notifier delivers a submission somewhere a human will see it.
type Notifier interface {
	NotifyContact(ctx context.Context, s domain.ContactSubmission) error
}

// Log writes submissions to the application log. Used when no broker is configured.
type Log struct{}

// NotifyContact logs the submission ID and sender.
func (Log) NotifyContact(ctx context.Context, s domain.ContactSubmission) error {
	logger.With(ctx, map[string]any{"submission_id": s.ID, "email": s.Email}).Info("new contact submission")
	return nil
}
