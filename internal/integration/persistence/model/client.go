// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name              string         `gorm:"type:varchar(100);not null"`
	DateOfBirth       *time.Time     `gorm:"type:date"`
	Notes             string         `gorm:"type:text"`
	MedicalConditions pq.StringArray `gorm:"type:text[]"`
	IsActive          bool           `gorm:"default:true"`
	CreatedAt         time.Time      `gorm:"not null"`
	UpdatedAt         time.Time      `gorm:"not null"`
	DeletedAt         gorm.DeletedAt `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Client{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		DateOfBirth:       m.DateOfBirth,
		Notes:             m.Notes,
		MedicalConditions: []string(m.MedicalConditions),
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// ClientModelFromEntity creates a ClientModel from a domain Client entity.
func ClientModelFromEntity(client *entity.Client) *ClientModel {
	return &ClientModel{
		ID:                client.ID,
		UserID:            client.UserID,
		Name:              client.Name,
		DateOfBirth:       client.DateOfBirth,
		Notes:             client.Notes,
		MedicalConditions: pq.StringArray(client.MedicalConditions),
		IsActive:          client.IsActive,
		CreatedAt:         client.CreatedAt,
		UpdatedAt:         client.UpdatedAt,
	}
}
