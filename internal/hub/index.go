package hub

import (
	"volunteerhub/internal/models"
)

// BuildIndex builds the category lookup from one snapshot. It is rebuilt
// wholesale whenever the snapshot changes, never patched.
func BuildIndex(categories []models.Category) map[string]models.Category {
	index := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		index[category.CategoryID] = category
	}
	return index
}
