package hub

import (
	"testing"
	"volunteerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFilterExactness(t *testing.T) {
	posts := []models.Post{
		makePost("1", "c1", "a1"),
		makePost("2", "c2", "a2"),
		makePost("3", "", "a3"),
		makePost("4", "c1", "a4"),
	}
	index := BuildIndex([]models.Category{
		{CategoryID: "c1", Name: "Education"},
		{CategoryID: "c2", Name: "Environment"},
	})

	tests := []struct {
		name        string
		filter      FilterState
		expectedIDs []string
	}{
		{
			name:        "Без фильтра видны все посты",
			filter:      FilterState{},
			expectedIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:        "Фильтр c1 оставляет только точные совпадения",
			filter:      FilterState{SelectedCategoryID: "c1"},
			expectedIDs: []string{"1", "4"},
		},
		{
			name:        "Пост без категории исключается любым фильтром",
			filter:      FilterState{SelectedCategoryID: "c2"},
			expectedIDs: []string{"2"},
		},
		{
			name:        "Фильтр по несуществующей категории не видит ничего",
			filter:      FilterState{SelectedCategoryID: "c9"},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, _ := Project(posts, index, tt.filter)

			ids := make([]string, 0, len(visible))
			for _, v := range visible {
				ids = append(ids, v.PostID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestProjectOrderPreservation(t *testing.T) {
	// snapshot order is the only order, no implicit resort
	posts := []models.Post{
		makePost("9", "c1", "a1"),
		makePost("2", "c1", "a2"),
		makePost("7", "c1", "a3"),
		makePost("1", "c1", "a4"),
	}
	index := BuildIndex([]models.Category{{CategoryID: "c1", Name: "Education"}})

	for _, filter := range []FilterState{{}, {SelectedCategoryID: "c1"}} {
		visible, _ := Project(posts, index, filter)
		require.Len(t, visible, 4)
		assert.Equal(t, "9", visible[0].PostID)
		assert.Equal(t, "2", visible[1].PostID)
		assert.Equal(t, "7", visible[2].PostID)
		assert.Equal(t, "1", visible[3].PostID)
	}
}

func TestProjectJoinTolerance(t *testing.T) {
	posts := []models.Post{
		makePost("1", "c1", "a1"),
		makePost("2", "c9", "a2"),
		makePost("3", "", "a3"),
	}
	index := BuildIndex([]models.Category{{CategoryID: "c1", Name: "Education"}})

	visible, _ := Project(posts, index, FilterState{})
	require.Len(t, visible, 3)

	// dangling or null references degrade to the fallback label, the post stays
	assert.Equal(t, "Education", visible[0].CategoryLabel)
	assert.Equal(t, CategoryNotFound, visible[1].CategoryLabel)
	assert.Equal(t, CategoryNotFound, visible[2].CategoryLabel)
}

func TestProjectMarkerSubset(t *testing.T) {
	withCoords := makePost("1", "c1", "a1")
	withCoords.Lat = floatPtr(40.785091)
	withCoords.Lng = floatPtr(-73.968285)
	withCoords.Location = "Central Park"

	onlyLat := makePost("2", "c1", "a2")
	onlyLat.Lat = floatPtr(37.819929)

	noCoords := makePost("3", "c1", "a3")

	coordsNoLocation := makePost("4", "c1", "a4")
	coordsNoLocation.Lat = floatPtr(48.858844)
	coordsNoLocation.Lng = floatPtr(2.294351)

	posts := []models.Post{withCoords, onlyLat, noCoords, coordsNoLocation}
	index := BuildIndex([]models.Category{{CategoryID: "c1", Name: "Education"}})

	visible, markers := Project(posts, index, FilterState{})

	// все посты видимы, маркеры только у постов с обеими координатами
	require.Len(t, visible, 4)
	require.Len(t, markers, 2)

	assert.Equal(t, "1", markers[0].PostID)
	assert.Equal(t, "Central Park", markers[0].Label)
	assert.Equal(t, 40.785091, markers[0].Position.Lat)
	assert.Equal(t, -73.968285, markers[0].Position.Lng)

	// без адреса подпись маркера деградирует до подписи категории
	assert.Equal(t, "4", markers[1].PostID)
	assert.Equal(t, "Education", markers[1].Label)
}

func TestProjectTransientPositionalID(t *testing.T) {
	posts := []models.Post{
		makePost("", "c1", "a1"),
		makePost("", "c1", "a2"),
	}
	index := BuildIndex([]models.Category{{CategoryID: "c1", Name: "Education"}})

	visible, _ := Project(posts, index, FilterState{})
	require.Len(t, visible, 2)

	// positional ids live only in the projection output
	assert.Equal(t, "0", visible[0].PostID)
	assert.Equal(t, "1", visible[1].PostID)
	assert.Equal(t, "", posts[0].PostID)
	assert.Equal(t, "", posts[1].PostID)
}

func TestProjectIsPure(t *testing.T) {
	posts := []models.Post{
		makePost("1", "c1", "a1"),
		makePost("2", "c9", "a2"),
	}
	index := BuildIndex([]models.Category{{CategoryID: "c1", Name: "Education"}})
	filter := FilterState{SelectedCategoryID: "c1"}

	first, firstMarkers := Project(posts, index, filter)
	second, secondMarkers := Project(posts, index, filter)

	assert.Equal(t, first, second)
	assert.Equal(t, firstMarkers, secondMarkers)
}

// сценарий из сквозного примера: два поста, одна известная категория
func TestProjectEndToEndScenario(t *testing.T) {
	posts := []models.Post{
		makePost("1", "c1", "a1"),
		makePost("2", "c9", "a2"),
	}
	index := BuildIndex([]models.Category{{CategoryID: "c1", Name: "Education"}})

	filter := FilterState{}

	// unfiltered: both posts, labels resolved and degraded
	visible, _ := Project(posts, index, filter)
	require.Len(t, visible, 2)
	assert.Equal(t, "1", visible[0].PostID)
	assert.Equal(t, "Education", visible[0].CategoryLabel)
	assert.Equal(t, "2", visible[1].PostID)
	assert.Equal(t, CategoryNotFound, visible[1].CategoryLabel)

	// filter toggled to c1: only the first post
	filter = filter.Toggle("c1")
	visible, _ = Project(posts, index, filter)
	require.Len(t, visible, 1)
	assert.Equal(t, "1", visible[0].PostID)

	// toggled again: both posts back, original order
	filter = filter.Toggle("c1")
	visible, _ = Project(posts, index, filter)
	require.Len(t, visible, 2)
	assert.Equal(t, "1", visible[0].PostID)
	assert.Equal(t, "2", visible[1].PostID)
}
