package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ertansel/siteapi/models"
	"github.com/ertansel/siteapi/services"
)

// stubStore is a minimal in-memory services.Store for handler tests. Only the
// paths the comment handlers touch are fleshed out.
type stubStore struct {
	sessions map[string]*models.EngagementSession
	articles map[uint]*models.Article
	comments map[string]*models.Comment
}

func newStubStore() *stubStore {
	return &stubStore{
		sessions: map[string]*models.EngagementSession{},
		articles: map[uint]*models.Article{},
		comments: map[string]*models.Comment{},
	}
}

func (s *stubStore) Transact(ctx context.Context, fn func(tx services.Store) error) error {
	return fn(s)
}

func (s *stubStore) GetSession(ctx context.Context, id string) (*models.EngagementSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (s *stubStore) SessionForUpdate(ctx context.Context, id string) (*models.EngagementSession, error) {
	return s.GetSession(ctx, id)
}

func (s *stubStore) CreateSession(ctx context.Context, sess *models.EngagementSession) error {
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *stubStore) SaveSessionLikes(ctx context.Context, sess *models.EngagementSession) error {
	if cur, ok := s.sessions[sess.ID]; ok {
		cur.LikedPosts = append([]uint{}, sess.LikedPosts...)
	}
	return nil
}

func (s *stubStore) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	for _, a := range s.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubStore) ArticleByInternalID(ctx context.Context, id uint) (*models.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubStore) AddLikeCount(ctx context.Context, articleID uint, delta int) error { return nil }
func (s *stubStore) AddViewCount(ctx context.Context, articleID uint) error            { return nil }

func (s *stubStore) CountArticles(ctx context.Context, f services.ArticleFilter) (int64, error) {
	return int64(len(s.articles)), nil
}

func (s *stubStore) ListArticles(ctx context.Context, f services.ArticleFilter, offset, limit int) ([]models.Article, error) {
	return nil, nil
}

func (s *stubStore) ListTopics(ctx context.Context) ([]string, error) { return nil, nil }

func (s *stubStore) CreateComment(ctx context.Context, c *models.Comment) error {
	cp := *c
	s.comments[c.ID] = &cp
	return nil
}

func (s *stubStore) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *stubStore) DeleteComment(ctx context.Context, id string) error {
	delete(s.comments, id)
	return nil
}

func (s *stubStore) CountSessionComments(ctx context.Context, articleID uint, sessionID string) (int64, error) {
	var n int64
	for _, c := range s.comments {
		if c.ArticleID == articleID && c.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (s *stubStore) CountComments(ctx context.Context, articleID uint) (int64, error) {
	var n int64
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}

func (s *stubStore) ListComments(ctx context.Context, articleID uint, offset, limit int) ([]models.Comment, error) {
	return nil, nil
}

func (s *stubStore) CountAllComments(ctx context.Context) (int64, error) {
	return int64(len(s.comments)), nil
}

func (s *stubStore) ListAllComments(ctx context.Context, offset, limit int) ([]models.Comment, error) {
	return nil, nil
}

// cooldownRecorder replaces the redis-backed cooldown in tests.
type cooldownRecorder struct {
	active  bool
	started int
}

func newCommentTestRouter(store *stubStore, cd *cooldownRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	moderation := services.NewModeration(store)
	listing := services.NewListing(store)
	c := NewCommentController(moderation, listing)
	c.cooldownActive = func(string) bool { return cd.active }
	c.cooldownStart = func(string) { cd.started++ }

	r := gin.New()
	r.POST("/comments", c.CreateComment)
	return r
}

func postComment(r *gin.Engine, payload gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCommentKeepsPunctuationIntact(t *testing.T) {
	store := newStubStore()
	store.articles[1] = &models.Article{Slug: "hello-world", InternalID: 1}
	store.sessions["s1"] = &models.EngagementSession{ID: "s1"}
	r := newCommentTestRouter(store, &cooldownRecorder{})

	w := postComment(r, gin.H{
		"article_id":  "hello-world",
		"session_id":  "s1",
		"body":        "it's fun & games, friends",
		"author_name": "O'Brien",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, store.comments, 1)
	for _, c := range store.comments {
		assert.Equal(t, "it's fun & games, friends", c.Body)
		assert.Equal(t, "O'Brien", c.AuthorName)
	}
}

func TestCreateCommentLengthCountsVisibleRunes(t *testing.T) {
	store := newStubStore()
	store.articles[1] = &models.Article{Slug: "hello-world", InternalID: 1}
	store.sessions["s1"] = &models.EngagementSession{ID: "s1"}
	r := newCommentTestRouter(store, &cooldownRecorder{})

	// 300 visible runes; entity encoding must not inflate past the 500 cap
	w := postComment(r, gin.H{
		"article_id":  "hello-world",
		"session_id":  "s1",
		"body":        strings.Repeat("&y", 150),
		"author_name": "Alice",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCreateCommentCooldownOpensOnlyOnAcceptance(t *testing.T) {
	store := newStubStore()
	store.articles[1] = &models.Article{Slug: "hello-world", InternalID: 1}
	store.sessions["s1"] = &models.EngagementSession{ID: "s1"}
	cd := &cooldownRecorder{}
	r := newCommentTestRouter(store, cd)

	// a rejected submission must not burn the window
	w := postComment(r, gin.H{
		"article_id":  "no-such-article",
		"session_id":  "s1",
		"body":        "typo'd slug",
		"author_name": "Alice",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, cd.started)

	// the corrected resubmission goes straight through
	w = postComment(r, gin.H{
		"article_id":  "hello-world",
		"session_id":  "s1",
		"body":        "fixed it",
		"author_name": "Alice",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, cd.started)

	cd.active = true
	w = postComment(r, gin.H{
		"article_id":  "hello-world",
		"session_id":  "s1",
		"body":        "too soon",
		"author_name": "Alice",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1, cd.started)
}
