// Package domain holds the member types and ports
package domain

// Member is a registered account
type Member struct {
	ID      int64
	Name    string
	Email   string
	Picture string
}

// MemberRes is the profile view
type MemberRes struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"홍길동"`
	Email   string `json:"email" example:"gildong@example.com"`
	Picture string `json:"picture"`
}

// MyPageRes is the profile plus collection counts
type MyPageRes struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Picture           string `json:"picture"`
	FavoriteCount     int    `json:"favoriteCount"`
	DetectionLogCount int    `json:"detectionLogCount"`
}

// UpsertInput is what a login or the admin tool provides
type UpsertInput struct {
	Email   string `validate:"required,email"`
	Name    string `validate:"required"`
	Picture string
}
