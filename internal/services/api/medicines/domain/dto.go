// Package domain holds DTOs for medicine http and service contracts
package domain

// SearchQuery selects one page of search results
type SearchQuery struct {
	Keyword string `query:"keyword" example:"타이레놀"`
	Page    int    `query:"page" default:"1" example:"1"`
}

// RelatedQuery asks for name suggestions
type RelatedQuery struct {
	Name string `query:"name" example:"타이"`
}

// MedicineRes is the detail view of one medicine
type MedicineRes struct {
	ID          int64    `json:"id" example:"195700020"`
	Code        string   `json:"code" example:"A11AGGGGA5864"`
	Name        string   `json:"name" example:"타이레놀정500밀리그람"`
	Company     string   `json:"company" example:"한국존슨앤드존슨판매"`
	Ingredients []string `json:"ingredient"`
	Image       string   `json:"image"`
	Effect      string   `json:"effect"`
	Usages      string   `json:"usages"`
	Precautions string   `json:"precautions"`
	IsFavorite  bool     `json:"isFavorite"`
}

// MedicineSearchRes is one search hit
type MedicineSearchRes struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Image      string `json:"image"`
	IsFavorite bool   `json:"isFavorite"`
}

// SearchPageRes is one page of search hits
type SearchPageRes struct {
	Total     int                 `json:"total"`
	TotalPage int                 `json:"totalPage"`
	Page      int                 `json:"page"`
	LastPage  bool                `json:"lastPage"`
	Items     []MedicineSearchRes `json:"items"`
}
