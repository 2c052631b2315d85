// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// DefaultPosterImage is substituted when a poster is created without an image path.
const DefaultPosterImage = "/abstract-poster.png"

// Category represents the catalog category a poster belongs to.
type Category string

const (
	CategoryArt       Category = "art"
	CategoryLandscape Category = "landscape"
	CategoryUrban     Category = "urban"
	CategorySpace     Category = "space"
)

// CategoryAll is the browsing filter value that matches every category.
// It is never stored on a poster.
const CategoryAll = "all"

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryArt, CategoryLandscape, CategoryUrban, CategorySpace:
		return true
	default:
		return false
	}
}

// Poster is a catalog item. IDs are monotonic timestamp strings assigned at
// creation time; the field names double as the persisted JSON format.
type Poster struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
}
