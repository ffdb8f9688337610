// Package notification delivers queued emails via Resend.
package notification

import (
	"context"
	"fmt"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// Service queues outbound notification emails.
type Service struct {
	queue      adapter.NotificationQueueRepository
	appBaseURL string
}

// NewService creates a new notification service.
func NewService(queue adapter.NotificationQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Scheduling of Care"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewNotificationJob(
		entity.NotificationPasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueue,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueBudgetAlertEmail queues a budget alert email.
func (s *Service) QueueBudgetAlertEmail(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Budget alert: %s at %d%% - Scheduling of Care", input.CategoryName, input.Utilization)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"client_name":   input.ClientName,
		"category_name": input.CategoryName,
		"severity":      input.Severity,
		"utilization":   fmt.Sprintf("%d", input.Utilization),
		"spent_amount":  input.SpentAmount,
		"budget_amount": input.BudgetAmount,
	}

	job := entity.NewNotificationJob(
		entity.NotificationBudgetAlert,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueue,
			"failed to queue budget alert email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.NotificationService.
var _ adapter.NotificationService = (*Service)(nil)
