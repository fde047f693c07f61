package notify

import (
	"context"
	"log"
)

// PostCounter is the persistence operation the updater needs.
type PostCounter interface {
	IncrementPostCount(ctx context.Context, userID uint) error
}

// Updater increments a user's post_count when a post-created notification
// is delivered. The counter is eventually consistent with the true post
// count; concurrent creates may interleave arbitrarily.
type Updater struct {
	store PostCounter
}

func NewUpdater(store PostCounter) *Updater {
	return &Updater{store: store}
}

// HandlePostCreated is a consumer Handler.
func (u *Updater) HandlePostCreated(ctx context.Context, msg PostCreated) error {
	if err := u.store.IncrementPostCount(ctx, msg.UserID); err != nil {
		return err
	}

	log.Printf("User %d post count updated", msg.UserID)
	return nil
}
