// Package domain holds DTOs for favorites http and service contracts
package domain

import "time"

// ListQuery selects one page of favorites
type ListQuery struct {
	Page int    `query:"page" default:"1" example:"1"`
	Sort string `query:"sort" default:"desc" example:"desc"`
}

// CreateInput marks a medicine as favorite
type CreateInput struct {
	MedicineID int64 `json:"medicineId" validate:"required,min=1" example:"195700020"`
}

// FavoriteRes is one favorite joined with its medicine
type FavoriteRes struct {
	ID              int64     `json:"id"`
	MedicineID      int64     `json:"medicineId"`
	MedicineName    string    `json:"medicineName"`
	MedicineCompany string    `json:"medicineCompany"`
	MedicineImage   string    `json:"medicineImage"`
	IsFavorite      bool      `json:"isFavorite"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FavoritePageRes is one page of a member's favorites
type FavoritePageRes struct {
	MemberID  int64         `json:"memberId"`
	Total     int           `json:"total"`
	TotalPage int           `json:"totalPage"`
	Page      int           `json:"page"`
	LastPage  bool          `json:"lastPage"`
	Items     []FavoriteRes `json:"items"`
}
