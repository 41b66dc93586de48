package services

import (
	"context"

	"github.com/ertansel/siteapi/models"
)

// ArticleFilter narrows the article listing. Topic is an exact match, Search
// a case-insensitive substring match against the title column of the filter's
// locale. Both combine with AND; empty values disable that dimension.
type ArticleFilter struct {
	Locale Locale
	Topic  string
	Search string
}

// Store abstracts the persistence layer behind the services. Lookup methods
// return (nil, nil) when the row does not exist; any non-nil error is an
// infrastructure failure and propagates untouched.
type Store interface {
	// Transact runs fn against a store whose writes commit or roll back as a
	// unit. SessionForUpdate inside fn holds a row lock until commit.
	Transact(ctx context.Context, fn func(tx Store) error) error

	GetSession(ctx context.Context, id string) (*models.EngagementSession, error)
	// SessionForUpdate is GetSession with the row locked for the duration of
	// the surrounding transaction. Outside a transaction it behaves like a
	// plain lookup.
	SessionForUpdate(ctx context.Context, id string) (*models.EngagementSession, error)
	CreateSession(ctx context.Context, s *models.EngagementSession) error
	SaveSessionLikes(ctx context.Context, s *models.EngagementSession) error

	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ArticleByInternalID(ctx context.Context, id uint) (*models.Article, error)
	// AddLikeCount adjusts the denormalized like counter by delta in a single
	// statement; a negative delta floors the counter at zero.
	AddLikeCount(ctx context.Context, articleID uint, delta int) error
	// AddViewCount increments the view counter atomically.
	AddViewCount(ctx context.Context, articleID uint) error
	CountArticles(ctx context.Context, f ArticleFilter) (int64, error)
	ListArticles(ctx context.Context, f ArticleFilter, offset, limit int) ([]models.Article, error)
	// ListTopics returns the distinct topics across all articles, sorted
	// alphabetically, ignoring any active filter.
	ListTopics(ctx context.Context) ([]string, error)

	CreateComment(ctx context.Context, c *models.Comment) error
	CommentByID(ctx context.Context, id string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	CountSessionComments(ctx context.Context, articleID uint, sessionID string) (int64, error)
	CountComments(ctx context.Context, articleID uint) (int64, error)
	ListComments(ctx context.Context, articleID uint, offset, limit int) ([]models.Comment, error)
	CountAllComments(ctx context.Context) (int64, error)
	ListAllComments(ctx context.Context, offset, limit int) ([]models.Comment, error)
}
