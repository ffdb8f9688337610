// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the status of a notification job in the queue.
type NotificationStatus string

const (
	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"
)

// NotificationKind represents the type of notification template.
type NotificationKind string

const (
	NotificationPasswordReset NotificationKind = "password_reset"
	NotificationBudgetAlert   NotificationKind = "budget_alert"
)

// NotificationJob represents an email notification waiting in the queue.
type NotificationJob struct {
	ID             uuid.UUID
	Kind           NotificationKind
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         NotificationStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewNotificationJob creates a new NotificationJob with default values.
func NewNotificationJob(kind NotificationKind, recipientEmail, recipientName, subject string, data map[string]interface{}) *NotificationJob {
	now := time.Now().UTC()
	return &NotificationJob{
		ID:             uuid.New(),
		Kind:           kind,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         NotificationStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as currently being processed.
func (n *NotificationJob) MarkProcessing() {
	n.Status = NotificationStatusProcessing
}

// MarkSent marks the job as successfully sent.
func (n *NotificationJob) MarkSent(providerID string) {
	n.Status = NotificationStatusSent
	n.ProviderID = providerID
	now := time.Now().UTC()
	n.ProcessedAt = &now
}

// MarkFailed records a failed attempt and schedules a retry if attempts remain.
func (n *NotificationJob) MarkFailed(err error, permanent bool) {
	n.Attempts++
	n.LastError = err.Error()

	if permanent || n.Attempts >= n.MaxAttempts {
		n.Status = NotificationStatusFailed
		now := time.Now().UTC()
		n.ProcessedAt = &now
	} else {
		n.Status = NotificationStatusPending
		n.ScheduledAt = n.nextRetry()
	}
}

// nextRetry backs off: immediate, 1min, 5min.
func (n *NotificationJob) nextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if n.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[n.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// IsReadyToProcess reports whether the job is pending and due.
func (n *NotificationJob) IsReadyToProcess() bool {
	return n.Status == NotificationStatusPending && time.Now().UTC().After(n.ScheduledAt)
}
