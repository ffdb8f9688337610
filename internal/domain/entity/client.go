// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a care recipient whose tasks and budgets are tracked.
// A client is exclusively owned by the user (caregiver) who created it.
type Client struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	DateOfBirth       *time.Time
	Notes             string
	MedicalConditions []string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewClient creates a new Client entity owned by the given user.
func NewClient(userID uuid.UUID, name string, dateOfBirth *time.Time, notes string, medicalConditions []string) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              name,
		DateOfBirth:       dateOfBirth,
		Notes:             notes,
		MedicalConditions: medicalConditions,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
