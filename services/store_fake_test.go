package services

import (
	"context"
	"sort"
	"strings"

	"github.com/ertansel/siteapi/models"
)

// fakeStore is an in-memory Store for exercising the services without MySQL.
// It mirrors the query semantics of GormStore: exact topic match, lowercase
// substring search on the localized title, newest-first ordering and the
// floor-at-zero like counter.
type fakeStore struct {
	sessions map[string]*models.EngagementSession
	articles map[uint]*models.Article
	comments map[string]*models.Comment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: map[string]*models.EngagementSession{},
		articles: map[uint]*models.Article{},
		comments: map[string]*models.Comment{},
	}
}

func (f *fakeStore) addArticle(a models.Article) *models.Article {
	cp := a
	f.articles[cp.InternalID] = &cp
	return &cp
}

func (f *fakeStore) addSession(id string, liked ...uint) *models.EngagementSession {
	s := &models.EngagementSession{ID: id, LikedPosts: append([]uint{}, liked...)}
	f.sessions[id] = s
	return s
}

func (f *fakeStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	return fn(f)
}

func (f *fakeStore) GetSession(ctx context.Context, id string) (*models.EngagementSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.LikedPosts = append([]uint{}, s.LikedPosts...)
	return &cp, nil
}

func (f *fakeStore) SessionForUpdate(ctx context.Context, id string) (*models.EngagementSession, error) {
	return f.GetSession(ctx, id)
}

func (f *fakeStore) CreateSession(ctx context.Context, s *models.EngagementSession) error {
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeStore) SaveSessionLikes(ctx context.Context, s *models.EngagementSession) error {
	if cur, ok := f.sessions[s.ID]; ok {
		cur.LikedPosts = append([]uint{}, s.LikedPosts...)
	}
	return nil
}

func (f *fakeStore) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ArticleByInternalID(ctx context.Context, id uint) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) AddLikeCount(ctx context.Context, articleID uint, delta int) error {
	if a, ok := f.articles[articleID]; ok {
		a.LikeCount += int64(delta)
		if a.LikeCount < 0 {
			a.LikeCount = 0
		}
	}
	return nil
}

func (f *fakeStore) AddViewCount(ctx context.Context, articleID uint) error {
	if a, ok := f.articles[articleID]; ok {
		a.ViewCount++
	}
	return nil
}

func (f *fakeStore) filtered(flt ArticleFilter) []models.Article {
	var rows []models.Article
	for _, a := range f.articles {
		if flt.Topic != "" && a.Topic != flt.Topic {
			continue
		}
		if flt.Search != "" {
			title := LocalizedTitle(a, flt.Locale)
			if !strings.Contains(strings.ToLower(title), strings.ToLower(flt.Search)) {
				continue
			}
		}
		rows = append(rows, *a)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PublishedAt.After(rows[j].PublishedAt)
	})
	return rows
}

func (f *fakeStore) CountArticles(ctx context.Context, flt ArticleFilter) (int64, error) {
	return int64(len(f.filtered(flt))), nil
}

func (f *fakeStore) ListArticles(ctx context.Context, flt ArticleFilter, offset, limit int) ([]models.Article, error) {
	rows := f.filtered(flt)
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (f *fakeStore) ListTopics(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	var topics []string
	for _, a := range f.articles {
		if _, ok := seen[a.Topic]; !ok {
			seen[a.Topic] = struct{}{}
			topics = append(topics, a.Topic)
		}
	}
	sort.Strings(topics)
	return topics, nil
}

func (f *fakeStore) CreateComment(ctx context.Context, c *models.Comment) error {
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeStore) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) DeleteComment(ctx context.Context, id string) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeStore) CountSessionComments(ctx context.Context, articleID uint, sessionID string) (int64, error) {
	var n int64
	for _, c := range f.comments {
		if c.ArticleID == articleID && c.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) sortedComments(filter func(*models.Comment) bool) []models.Comment {
	var rows []models.Comment
	for _, c := range f.comments {
		if filter(c) {
			rows = append(rows, *c)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows
}

func (f *fakeStore) CountComments(ctx context.Context, articleID uint) (int64, error) {
	rows := f.sortedComments(func(c *models.Comment) bool { return c.ArticleID == articleID })
	return int64(len(rows)), nil
}

func (f *fakeStore) ListComments(ctx context.Context, articleID uint, offset, limit int) ([]models.Comment, error) {
	rows := f.sortedComments(func(c *models.Comment) bool { return c.ArticleID == articleID })
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (f *fakeStore) CountAllComments(ctx context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}

func (f *fakeStore) ListAllComments(ctx context.Context, offset, limit int) ([]models.Comment, error) {
	rows := f.sortedComments(func(*models.Comment) bool { return true })
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}
