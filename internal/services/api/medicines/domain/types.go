package domain

// CatalogItem is one medicine row from the relational catalog
type CatalogItem struct {
	ID         int64
	Code       string
	Name       string
	Company    string
	Ingredient string // pipe delimited
	Image      string
}

// SearchDoc is the search index projection of a CatalogItem
type SearchDoc struct {
	ID      int64
	Name    string
	Company string
	Image   string
}

// Labels is the package insert text shown on a detail page
type Labels struct {
	Effect      string
	Usages      string
	Precautions string
}
