// Package domain holds DTOs for detection log http and service contracts
package domain

import "time"

// ListQuery selects one page of detection logs
type ListQuery struct {
	Page int    `query:"page" default:"1" example:"1"`
	Sort string `query:"sort" default:"desc" example:"desc"`
}

// CreateInput records a detected medicine
type CreateInput struct {
	MedicineID int64 `json:"medicineId" validate:"required,min=1" example:"195700020"`
}

// DetectionLogRes is one detection joined with its medicine
type DetectionLogRes struct {
	ID              int64     `json:"id"`
	MedicineID      int64     `json:"medicineId"`
	MedicineName    string    `json:"medicineName"`
	MedicineCompany string    `json:"medicineCompany"`
	MedicineImage   string    `json:"medicineImage"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DetectionLogPageRes is one page of a member's detection history
type DetectionLogPageRes struct {
	MemberID  int64             `json:"memberId"`
	Total     int               `json:"total"`
	TotalPage int               `json:"totalPage"`
	Page      int               `json:"page"`
	LastPage  bool              `json:"lastPage"`
	Items     []DetectionLogRes `json:"items"`
}
