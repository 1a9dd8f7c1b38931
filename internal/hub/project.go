package hub

import (
	"strconv"
	"volunteerhub/internal/models"
)

// CategoryNotFound - подпись поста, чья категория отсутствует в текущем снимке
const CategoryNotFound = "Category not found"

// Project derives the visible list and the map markers from the three inputs.
// It is a pure function: no side effects, same inputs always give the same
// output, and the snapshot order of posts is preserved as is.
//
// The filter is an exact match on category_id; the CategoryNotFound fallback
// affects only the label, never filter eligibility. Markers are emitted only
// for visible posts carrying both coordinates, so the two collections need
// not have equal cardinality.
func Project(posts []models.Post, index map[string]models.Category, filter FilterState) ([]models.VisiblePost, []models.Marker) {
	visible := make([]models.VisiblePost, 0, len(posts))
	markers := make([]models.Marker, 0)

	for i, post := range posts {
		if filter.SelectedCategoryID != "" {
			if post.CategoryID == nil || *post.CategoryID != filter.SelectedCategoryID {
				continue
			}
		}

		label := CategoryNotFound
		if post.CategoryID != nil {
			if category, ok := index[*post.CategoryID]; ok {
				label = category.Name
			}
		}

		// transient positional id, valid only within this projection
		if post.PostID == "" {
			post.PostID = strconv.Itoa(i)
		}

		visible = append(visible, models.VisiblePost{
			Post:          post,
			CategoryLabel: label,
		})

		if post.Lat != nil && post.Lng != nil {
			markerLabel := post.Location
			if markerLabel == "" {
				markerLabel = label
			}
			markers = append(markers, models.Marker{
				PostID: post.PostID,
				Label:  markerLabel,
				Position: models.Position{
					Lat: *post.Lat,
					Lng: *post.Lng,
				},
			})
		}
	}

	return visible, markers
}
