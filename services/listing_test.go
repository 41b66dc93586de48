package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ertansel/siteapi/models"
)

func seedArticles(store *fakeStore, n int) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		topic := "go"
		if i%2 == 0 {
			topic = "web"
		}
		store.addArticle(models.Article{
			Slug:        fmt.Sprintf("post-%d", i),
			InternalID:  uint(i),
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
			Topic:       topic,
			TitleEN:     fmt.Sprintf("English Title %d", i),
			TitleTR:     fmt.Sprintf("Türkçe Başlık %d", i),
		})
	}
}

func TestArticlesPageValidation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	listing := NewListing(store)

	_, err := listing.Articles(ctx, 0, "", "", LocaleEN)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = listing.Articles(ctx, 1, "", "", Locale("de"))
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestArticlesPaginationBoundaries(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly one full page", func(t *testing.T) {
		store := newFakeStore()
		seedArticles(store, 9)
		listing := NewListing(store)

		page, err := listing.Articles(ctx, 1, "", "", LocaleEN)
		require.NoError(t, err)
		assert.Len(t, page.Articles, 9)
		assert.Equal(t, int64(9), page.TotalCount)
		assert.Equal(t, 1, page.TotalPages)

		_, err = listing.Articles(ctx, 2, "", "", LocaleEN)
		assert.ErrorIs(t, err, ErrPageOutOfRange)
	})

	t.Run("empty table still has one page", func(t *testing.T) {
		store := newFakeStore()
		listing := NewListing(store)

		page, err := listing.Articles(ctx, 1, "", "", LocaleEN)
		require.NoError(t, err)
		assert.Empty(t, page.Articles)
		assert.Equal(t, int64(0), page.TotalCount)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("spillover makes a second page", func(t *testing.T) {
		store := newFakeStore()
		seedArticles(store, 10)
		listing := NewListing(store)

		first, err := listing.Articles(ctx, 1, "", "", LocaleEN)
		require.NoError(t, err)
		assert.Len(t, first.Articles, 9)
		assert.Equal(t, 2, first.TotalPages)

		second, err := listing.Articles(ctx, 2, "", "", LocaleEN)
		require.NoError(t, err)
		assert.Len(t, second.Articles, 1)
	})
}

func TestArticlesOrderedNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	seedArticles(store, 5)
	listing := NewListing(store)

	page, err := listing.Articles(ctx, 1, "", "", LocaleEN)
	require.NoError(t, err)
	require.Len(t, page.Articles, 5)
	for i := 1; i < len(page.Articles); i++ {
		assert.False(t, page.Articles[i].PublishedAt.After(page.Articles[i-1].PublishedAt))
	}
	assert.Equal(t, "post-5", page.Articles[0].Slug)
}

func TestArticlesTopicAndSearchCombineWithAnd(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	seedArticles(store, 6)
	listing := NewListing(store)

	byTopic, err := listing.Articles(ctx, 1, "web", "", LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, int64(3), byTopic.TotalCount)

	// search is a case-insensitive substring match on the localized title
	bySearch, err := listing.Articles(ctx, 1, "", "english title 3", LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bySearch.TotalCount)

	both, err := listing.Articles(ctx, 1, "web", "Title 4", LocaleEN)
	require.NoError(t, err)
	require.Equal(t, int64(1), both.TotalCount)
	assert.Equal(t, "post-4", both.Articles[0].Slug)

	// the Turkish locale searches Turkish titles and projects them
	tr, err := listing.Articles(ctx, 1, "", "başlık 2", LocaleTR)
	require.NoError(t, err)
	require.Equal(t, int64(1), tr.TotalCount)
	assert.Equal(t, "Türkçe Başlık 2", tr.Articles[0].Title)
}

func TestArticlesTopicsAggregateIgnoresFilters(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	seedArticles(store, 4)
	listing := NewListing(store)

	page, err := listing.Articles(ctx, 1, "go", "", LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, page.Topics, "topics stay unfiltered and sorted")
}

func TestArticleLookupAndLocaleProjection(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addArticle(models.Article{
		Slug:       "hello",
		InternalID: 1,
		TitleEN:    "Hello",
		TitleTR:    "Merhaba",
		ContentEN:  "english body",
		ContentTR:  "türkçe içerik",
	})
	listing := NewListing(store)

	en, err := listing.Article(ctx, "hello", LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, "Hello", en.Title)
	assert.Equal(t, "english body", en.Content)

	tr, err := listing.Article(ctx, "hello", LocaleTR)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", tr.Title)
	assert.Equal(t, "türkçe içerik", tr.Content)

	_, err = listing.Article(ctx, "missing", LocaleEN)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, err = listing.Article(ctx, "hello", Locale("fr"))
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestRecordViewIncrements(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addArticle(models.Article{Slug: "hello", InternalID: 1, ViewCount: 41})
	listing := NewListing(store)

	require.NoError(t, listing.RecordView(ctx, 1))
	assert.Equal(t, int64(42), store.articles[1].ViewCount)
}

func TestCommentsPaginationAndMineFlag(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addArticle(models.Article{Slug: "hello", InternalID: 1})
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		sid := "s1"
		if i%2 == 0 {
			sid = "s2"
		}
		_ = store.CreateComment(ctx, &models.Comment{
			ID:         fmt.Sprintf("c%d", i),
			ArticleID:  1,
			SessionID:  sid,
			AuthorName: "A",
			Body:       fmt.Sprintf("comment %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	listing := NewListing(store)

	first, err := listing.Comments(ctx, 1, "s1", 1)
	require.NoError(t, err)
	assert.Len(t, first.Comments, 7)
	assert.Equal(t, int64(8), first.TotalCount)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, "c7", first.Comments[0].ID, "newest first")
	assert.True(t, first.Comments[0].Mine, "c7 was written by s1")
	assert.False(t, first.Comments[1].Mine)

	second, err := listing.Comments(ctx, 1, "s1", 2)
	require.NoError(t, err)
	assert.Len(t, second.Comments, 1)

	_, err = listing.Comments(ctx, 1, "s1", 3)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = listing.Comments(ctx, 1, "s1", 0)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestAllCommentsForModeration(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	for i := 0; i < 3; i++ {
		_ = store.CreateComment(ctx, &models.Comment{
			ID:        fmt.Sprintf("c%d", i),
			ArticleID: uint(i + 1),
			SessionID: "s1",
			Body:      "x",
			CreatedAt: time.Date(2024, 5, 1, 9, i, 0, 0, time.UTC),
		})
	}
	listing := NewListing(store)

	rows, total, pages, err := listing.AllComments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, 1, pages)

	_, _, _, err = listing.AllComments(ctx, 2)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}
