package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ertansel/siteapi/models"
)

// GormStore is the MySQL-backed Store. Counter updates run as single-statement
// column expressions so concurrent increments are never lost, and the
// like/unlike transaction locks the session row to serialize the
// check-then-mutate sequence per (session, article) pair.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a connected gorm handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) GetSession(ctx context.Context, id string) (*models.EngagementSession, error) {
	var sess models.EngagementSession
	err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) SessionForUpdate(ctx context.Context, id string) (*models.EngagementSession, error) {
	var sess models.EngagementSession
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) CreateSession(ctx context.Context, sess *models.EngagementSession) error {
	return s.db.WithContext(ctx).Create(sess).Error
}

func (s *GormStore) SaveSessionLikes(ctx context.Context, sess *models.EngagementSession) error {
	return s.db.WithContext(ctx).
		Model(&models.EngagementSession{}).
		Where("id = ?", sess.ID).
		Update("liked_posts", sess.LikedPosts).Error
}

func (s *GormStore) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	err := s.db.WithContext(ctx).First(&a, "id = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) ArticleByInternalID(ctx context.Context, id uint) (*models.Article, error) {
	var a models.Article
	err := s.db.WithContext(ctx).First(&a, "id_a = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) AddLikeCount(ctx context.Context, articleID uint, delta int) error {
	q := s.db.WithContext(ctx).Model(&models.Article{}).Where("id_a = ?", articleID)
	if delta >= 0 {
		return q.UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
	}
	// floor at zero on decrement
	return q.UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - ?, 0)", -delta)).Error
}

func (s *GormStore) AddViewCount(ctx context.Context, articleID uint) error {
	return s.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id_a = ?", articleID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// filteredArticles composes the listing predicates as bound parameters. The
// localized title column comes from the fixed locale map, never from input.
func (s *GormStore) filteredArticles(ctx context.Context, f ArticleFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Article{})
	if f.Topic != "" {
		q = q.Where("topic = ?", f.Topic)
	}
	if f.Search != "" {
		cols := localeColumns[f.Locale]
		q = q.Where("LOWER("+cols.Title+") LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	return q
}

func (s *GormStore) CountArticles(ctx context.Context, f ArticleFilter) (int64, error) {
	var total int64
	err := s.filteredArticles(ctx, f).Count(&total).Error
	return total, err
}

func (s *GormStore) ListArticles(ctx context.Context, f ArticleFilter, offset, limit int) ([]models.Article, error) {
	var rows []models.Article
	err := s.filteredArticles(ctx, f).
		Order("published_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListTopics(ctx context.Context) ([]string, error) {
	var topics []string
	err := s.db.WithContext(ctx).
		Model(&models.Article{}).
		Distinct("topic").
		Order("topic ASC").
		Pluck("topic", &topics).Error
	return topics, err
}

func (s *GormStore) CreateComment(ctx context.Context, c *models.Comment) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormStore) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) DeleteComment(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}

func (s *GormStore) CountSessionComments(ctx context.Context, articleID uint, sessionID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ? AND session_id = ?", articleID, sessionID).
		Count(&n).Error
	return n, err
}

func (s *GormStore) CountComments(ctx context.Context, articleID uint) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Count(&total).Error
	return total, err
}

func (s *GormStore) ListComments(ctx context.Context, articleID uint, offset, limit int) ([]models.Comment, error) {
	var rows []models.Comment
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) CountAllComments(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Comment{}).Count(&total).Error
	return total, err
}

func (s *GormStore) ListAllComments(ctx context.Context, offset, limit int) ([]models.Comment, error) {
	var rows []models.Comment
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
