package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ertansel/siteapi/models"
	"github.com/ertansel/siteapi/utils"
)

// Engagement owns the session identity resolver and the like/unlike ledger.
// It is the only component that mutates session rows.
type Engagement struct {
	store Store
}

// NewEngagement creates the engagement service over the given store.
func NewEngagement(store Store) *Engagement {
	return &Engagement{store: store}
}

// ResolvedSession is the outcome of resolving a client-supplied session token.
// When IsNew is true the caller must propagate the fresh token back to the
// client, typically as a cookie.
type ResolvedSession struct {
	ID         string
	IsNew      bool
	LikedPosts []uint
}

// Resolve maps an opaque token to a known session, creating one with an empty
// liked-set when the token is absent or unknown.
func (e *Engagement) Resolve(ctx context.Context, token string) (*ResolvedSession, error) {
	if token != "" {
		sess, err := e.store.GetSession(ctx, token)
		if err != nil {
			return nil, err
		}
		if sess != nil {
			return &ResolvedSession{ID: sess.ID, IsNew: false, LikedPosts: sess.LikedPosts}, nil
		}
	}

	sess := &models.EngagementSession{
		ID:         uuid.NewString(),
		LikedPosts: []uint{},
	}
	if err := e.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return &ResolvedSession{ID: sess.ID, IsNew: true, LikedPosts: sess.LikedPosts}, nil
}

// Like records that the session liked the article and bumps the article's
// like counter. A second like for the same pair is rejected with
// ErrAlreadyLiked rather than treated as a no-op. Both writes commit as one
// transaction; the session row is locked so concurrent likes for the same
// pair serialize.
func (e *Engagement) Like(ctx context.Context, sessionID string, articleID uint) error {
	return e.store.Transact(ctx, func(tx Store) error {
		sess, err := tx.SessionForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return ErrSessionInvalid
		}
		if utils.ContainsUint(sess.LikedPosts, articleID) {
			return ErrAlreadyLiked
		}
		sess.LikedPosts = append(sess.LikedPosts, articleID)
		if err := tx.SaveSessionLikes(ctx, sess); err != nil {
			return err
		}
		return tx.AddLikeCount(ctx, articleID, 1)
	})
}

// Unlike removes the session's like and decrements the article counter,
// floored at zero. Unliking an article the session never liked fails with
// ErrNotLiked.
func (e *Engagement) Unlike(ctx context.Context, sessionID string, articleID uint) error {
	return e.store.Transact(ctx, func(tx Store) error {
		sess, err := tx.SessionForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return ErrSessionInvalid
		}
		if !utils.ContainsUint(sess.LikedPosts, articleID) {
			return ErrNotLiked
		}
		sess.LikedPosts = utils.RemoveUint(sess.LikedPosts, articleID)
		if err := tx.SaveSessionLikes(ctx, sess); err != nil {
			return err
		}
		return tx.AddLikeCount(ctx, articleID, -1)
	})
}

// IsLiked reports whether the session currently likes the article. An unknown
// session is simply not a liker.
func (e *Engagement) IsLiked(ctx context.Context, sessionID string, articleID uint) (bool, error) {
	sess, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, nil
	}
	return utils.ContainsUint(sess.LikedPosts, articleID), nil
}
