package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

// sessionCookieName carries the engagement session token between requests.
const sessionCookieName = "sid"

// articleListCachePrefix keys the redis-cached listing responses.
const articleListCachePrefix = "cache:articles:list:"

// ArticleController serves the public article listing and single-article
// reads, including session resolution for the engagement widgets.
type ArticleController struct {
	listing    *services.Listing
	engagement *services.Engagement
}

// NewArticleController creates a new ArticleController instance.
func NewArticleController(listing *services.Listing, engagement *services.Engagement) *ArticleController {
	return &ArticleController{listing: listing, engagement: engagement}
}

// ListArticles returns a filtered, paginated article page plus the topic set.
func (a *ArticleController) ListArticles(ctx *gin.Context) {
	page := 1
	if p, err := strconv.Atoi(ctx.Query("page")); err == nil {
		page = p
	}
	topic := strings.TrimSpace(ctx.Query("topic"))
	search := strings.TrimSpace(ctx.Query("search"))

	loc, err := services.ParseLocale(ctx.Query("locale"))
	if err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}

	// Cache topic/page slices only; search terms would explode the key space.
	cacheKey := ""
	if search == "" {
		cacheKey = fmt.Sprintf("%sloc=%s:topic=%s:page=%d", articleListCachePrefix, loc, topic, page)
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	result, err := a.listing.Articles(ctx.Request.Context(), page, topic, search, loc)
	if err != nil {
		respondServiceError(ctx, err, loc)
		return
	}

	if cacheKey != "" {
		utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: SignalSuccess, Data: result}, 10*time.Minute)
	}
	utils.Success(ctx, SignalSuccess, result)
}

// GetArticle returns a single article plus the resolved engagement session.
// A missing or unknown session token creates a fresh session whose token is
// propagated back via cookie; the article's view counter is bumped on every
// successful read.
func (a *ArticleController) GetArticle(ctx *gin.Context) {
	loc, err := services.ParseLocale(ctx.Query("locale"))
	if err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}

	slug := ctx.Param("slug")
	article, err := a.listing.Article(ctx.Request.Context(), slug, loc)
	if err != nil {
		if err == services.ErrArticleNotFound {
			utils.Error(ctx, http.StatusNotFound, 40401, "NOT_FOUND")
			return
		}
		respondServiceError(ctx, err, loc)
		return
	}

	token := ctx.Query("sessionId")
	if token == "" {
		token, _ = ctx.Cookie(sessionCookieName)
	}
	sess, err := a.engagement.Resolve(ctx.Request.Context(), token)
	if err != nil {
		respondServiceError(ctx, err, loc)
		return
	}
	if sess.IsNew {
		// one year; the session is the durable engagement identity
		ctx.SetCookie(sessionCookieName, sess.ID, 365*24*3600, "/", "", false, true)
	}

	if err := a.listing.RecordView(ctx.Request.Context(), article.InternalID); err != nil {
		utils.Sugar.Warnf("view count increment failed for %s: %v", slug, err)
	}

	utils.Success(ctx, SignalSuccess, gin.H{
		"article": article,
		"session": gin.H{
			"id":     sess.ID,
			"is_new": sess.IsNew,
			"liked":  utils.ContainsUint(sess.LikedPosts, article.InternalID),
		},
	})
}
