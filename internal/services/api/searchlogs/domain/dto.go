// Package domain holds DTOs for recent search log http and service contracts
package domain

// SearchLog is one recent search; the JSON form is also the stored value
// field order is fixed so a client echo of an entry matches the stored bytes
type SearchLog struct {
	Name      string `json:"name" validate:"required" example:"타이레놀"`
	CreatedAt string `json:"createdAt" validate:"required" example:"2024-03-01T09:30:12.123456"`
}
