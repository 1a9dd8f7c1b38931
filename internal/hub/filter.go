package hub

// FilterState holds zero-or-one selected category, empty string means no
// selection. Toggle is the only mutation: selecting the active category
// clears it.
type FilterState struct {
	SelectedCategoryID string
}

func (f FilterState) Toggle(categoryID string) FilterState {
	if f.SelectedCategoryID == categoryID {
		return FilterState{}
	}
	return FilterState{SelectedCategoryID: categoryID}
}
