// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
// Dates cross the API boundary as YYYY-MM-DD strings.
type CreateClientRequest struct {
	Name              string   `json:"name" binding:"required,min=1,max=100"`
	DateOfBirth       *string  `json:"date_of_birth,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
}

// UpdateClientRequest represents the request body for client update.
type UpdateClientRequest struct {
	Name              *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	DateOfBirth       *string  `json:"date_of_birth,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// ClientResponse represents a single care recipient in API responses.
type ClientResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	DateOfBirth       *string   `json:"date_of_birth,omitempty"`
	Notes             string    `json:"notes"`
	MedicalConditions []string  `json:"medical_conditions"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	conditions := client.MedicalConditions
	if conditions == nil {
		conditions = []string{}
	}
	return ClientResponse{
		ID:                client.ID.String(),
		Name:              client.Name,
		DateOfBirth:       formatDatePtr(client.DateOfBirth),
		Notes:             client.Notes,
		MedicalConditions: conditions,
		IsActive:          client.IsActive,
		CreatedAt:         client.CreatedAt,
		UpdatedAt:         client.UpdatedAt,
	}
}

// ToClientListResponse converts a list of clients to a ClientListResponse.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = ToClientResponse(client)
	}
	return ClientListResponse{
		Clients: responses,
	}
}
