package hub

import (
	"context"
	"log"
	"sync"
	"volunteerhub/internal/models"
)

// Enricher resolves each post's author email with one independent lookup per
// post. A slow or failing lookup for one post never delays the others: every
// successful completion is applied immediately through the callback, failures
// are logged and leave that single post without an email.
type Enricher struct {
	client BackendClient
}

func NewEnricher(client BackendClient) *Enricher {
	return &Enricher{client: client}
}

// Enrich blocks until every lookup has run to completion; callers that want a
// live patch run it in its own goroutine. apply is never called after ctx is
// cancelled.
func (e *Enricher) Enrich(ctx context.Context, auth models.AuthContext, posts []models.Post, apply func(postID, email string)) {
	var wg sync.WaitGroup

	for _, post := range posts {
		wg.Add(1)
		go func(p models.Post) {
			defer wg.Done()

			email, err := e.client.FindAuthorByID(ctx, auth, p.AuthorID)
			if err != nil {
				log.Printf("Не удалось разрешить email автора для поста %s: %v", p.PostID, err)
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}

			apply(p.PostID, email)
		}(post)
	}

	wg.Wait()
}
