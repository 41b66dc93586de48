package services

import (
	"context"
	"time"

	"github.com/ertansel/siteapi/models"
)

const (
	// ArticlePageSize is the fixed page size of the public article listing.
	ArticlePageSize = 9
	// CommentPageSize is the fixed page size of the comment listing.
	CommentPageSize = 7
	// AdminCommentPageSize is the page size of the admin moderation listing.
	AdminCommentPageSize = 20
)

// Listing is the read-only article and comment query engine.
type Listing struct {
	store Store
}

// NewListing creates the listing engine over the given store.
func NewListing(store Store) *Listing {
	return &Listing{store: store}
}

// ArticleSummary is one row of the public article listing, projected for a
// single locale.
type ArticleSummary struct {
	Slug        string    `json:"id"`
	InternalID  uint      `json:"id_a"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Topic       string    `json:"topic"`
	PublishedAt time.Time `json:"published_at"`
	LikeCount   int64     `json:"like_count"`
	ViewCount   int64     `json:"view_count"`
	BannerURL   string    `json:"banner_url"`
	ReadingTime int       `json:"reading_time"`
}

// ArticlePage is a filtered, paginated slice of the article table plus the
// unfiltered topic aggregate for building filter UI.
type ArticlePage struct {
	Articles   []ArticleSummary `json:"articles"`
	TotalCount int64            `json:"total_count"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	Topics     []string         `json:"topics"`
}

// Articles lists published articles newest first. Topic filters by exact
// match, search by case-insensitive substring against the localized title;
// both combine with AND. Pages are fixed at ArticlePageSize and run from 1 to
// totalPages, which floors at 1 even for an empty result.
func (l *Listing) Articles(ctx context.Context, page int, topic, search string, loc Locale) (*ArticlePage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if _, ok := localeColumns[loc]; !ok {
		return nil, ErrUnsupportedLocale
	}

	filter := ArticleFilter{Locale: loc, Topic: topic, Search: search}
	total, err := l.store.CountArticles(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := pageCount(total, ArticlePageSize)
	if page > totalPages {
		return nil, ErrPageOutOfRange
	}

	rows, err := l.store.ListArticles(ctx, filter, (page-1)*ArticlePageSize, ArticlePageSize)
	if err != nil {
		return nil, err
	}
	topics, err := l.store.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	out := &ArticlePage{
		Articles:   make([]ArticleSummary, 0, len(rows)),
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		Topics:     topics,
	}
	for i := range rows {
		out.Articles = append(out.Articles, summarize(&rows[i], loc))
	}
	return out, nil
}

// ArticleView is a full single-article projection for one locale.
type ArticleView struct {
	Slug        string    `json:"id"`
	InternalID  uint      `json:"id_a"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Topic       string    `json:"topic"`
	PublishedAt time.Time `json:"published_at"`
	LikeCount   int64     `json:"like_count"`
	ViewCount   int64     `json:"view_count"`
	BannerURL   string    `json:"banner_url"`
	ReadingTime int       `json:"reading_time"`
}

// Article loads a single article by its external slug.
func (l *Listing) Article(ctx context.Context, slug string, loc Locale) (*ArticleView, error) {
	if _, ok := localeColumns[loc]; !ok {
		return nil, ErrUnsupportedLocale
	}
	a, err := l.store.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return &ArticleView{
		Slug:        a.Slug,
		InternalID:  a.InternalID,
		Title:       LocalizedTitle(a, loc),
		Description: LocalizedDescription(a, loc),
		Content:     LocalizedContent(a, loc),
		Topic:       a.Topic,
		PublishedAt: a.PublishedAt,
		LikeCount:   a.LikeCount,
		ViewCount:   a.ViewCount,
		BannerURL:   a.BannerURL,
		ReadingTime: a.ReadingTime,
	}, nil
}

// RecordView bumps the article's monotonic view counter.
func (l *Listing) RecordView(ctx context.Context, articleID uint) error {
	return l.store.AddViewCount(ctx, articleID)
}

// CommentView is one row of the public comment listing. Mine marks comments
// written by the requesting session so the client can offer deletion.
type CommentView struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	Mine       bool      `json:"mine"`
}

// CommentPage is a paginated slice of one article's comments.
type CommentPage struct {
	Comments   []CommentView `json:"comments"`
	TotalCount int64         `json:"total_count"`
	TotalPages int           `json:"total_pages"`
	Page       int           `json:"page"`
}

// Comments lists an article's comments newest first, CommentPageSize per page.
func (l *Listing) Comments(ctx context.Context, articleID uint, sessionID string, page int) (*CommentPage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	total, err := l.store.CountComments(ctx, articleID)
	if err != nil {
		return nil, err
	}
	totalPages := pageCount(total, CommentPageSize)
	if page > totalPages {
		return nil, ErrPageOutOfRange
	}
	rows, err := l.store.ListComments(ctx, articleID, (page-1)*CommentPageSize, CommentPageSize)
	if err != nil {
		return nil, err
	}

	out := &CommentPage{
		Comments:   make([]CommentView, 0, len(rows)),
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
	}
	for _, c := range rows {
		out.Comments = append(out.Comments, CommentView{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Body:       c.Body,
			CreatedAt:  c.CreatedAt,
			Mine:       sessionID != "" && c.SessionID == sessionID,
		})
	}
	return out, nil
}

// AllComments lists comments across every article for the admin dashboard,
// newest first, including the raw writer-session and article references.
func (l *Listing) AllComments(ctx context.Context, page int) ([]models.Comment, int64, int, error) {
	if page < 1 {
		return nil, 0, 0, ErrInvalidPage
	}
	total, err := l.store.CountAllComments(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	totalPages := pageCount(total, AdminCommentPageSize)
	if page > totalPages {
		return nil, 0, 0, ErrPageOutOfRange
	}
	rows, err := l.store.ListAllComments(ctx, (page-1)*AdminCommentPageSize, AdminCommentPageSize)
	if err != nil {
		return nil, 0, 0, err
	}
	return rows, total, totalPages, nil
}

func summarize(a *models.Article, loc Locale) ArticleSummary {
	return ArticleSummary{
		Slug:        a.Slug,
		InternalID:  a.InternalID,
		Title:       LocalizedTitle(a, loc),
		Description: LocalizedDescription(a, loc),
		Topic:       a.Topic,
		PublishedAt: a.PublishedAt,
		LikeCount:   a.LikeCount,
		ViewCount:   a.ViewCount,
		BannerURL:   a.BannerURL,
		ReadingTime: a.ReadingTime,
	}
}

// pageCount is ceil(total/perPage) with a floor of one page.
func pageCount(total int64, perPage int) int {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}
