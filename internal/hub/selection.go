package hub

import (
	"volunteerhub/internal/models"
)

// Selection - two-state modal machine, Closed and Open. The invariant is that
// an open modal always has a selected post; a post left behind after Close is
// ignorable until the next Open.
type Selection struct {
	SelectedPost *models.Post
	ModalOpen    bool
}

// Open selects the post when it is a member of the current visible set and
// returns whether the modal opened. Opening a post that has been filtered out
// is a no-op, not an error. Re-opening while already open replaces the target.
func (s *Selection) Open(post models.Post, visible []models.VisiblePost) bool {
	member := false
	for _, v := range visible {
		if v.PostID == post.PostID {
			member = true
			break
		}
	}

	if !member {
		return false
	}

	selected := post
	s.SelectedPost = &selected
	s.ModalOpen = true
	return true
}

func (s *Selection) Close() {
	s.ModalOpen = false
}

// Current returns the inspected post only while the modal is open.
func (s *Selection) Current() (models.Post, bool) {
	if !s.ModalOpen || s.SelectedPost == nil {
		return models.Post{}, false
	}
	return *s.SelectedPost, true
}
