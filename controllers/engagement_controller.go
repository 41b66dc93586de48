package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

// EngagementController exposes the like/unlike ledger.
type EngagementController struct {
	engagement *services.Engagement
}

// NewEngagementController creates a new EngagementController instance.
func NewEngagementController(engagement *services.Engagement) *EngagementController {
	return &EngagementController{engagement: engagement}
}

type engagementRequest struct {
	ArticleID uint   `json:"article_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	Locale    string `json:"locale"`
}

// Like records a like for the (session, article) pair. Liking twice is an
// error, not a no-op.
func (e *EngagementController) Like(ctx *gin.Context) {
	var req engagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, SignalFailure)
		return
	}
	loc, _ := services.ParseLocale(req.Locale)

	if err := e.engagement.Like(ctx.Request.Context(), req.SessionID, req.ArticleID); err != nil {
		respondServiceError(ctx, err, loc)
		return
	}

	utils.InvalidateByPrefix(articleListCachePrefix)
	utils.Success(ctx, SignalLikeSuccess, nil)
}

// Unlike removes a previously recorded like.
func (e *EngagementController) Unlike(ctx *gin.Context) {
	var req engagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, SignalFailure)
		return
	}
	loc, _ := services.ParseLocale(req.Locale)

	if err := e.engagement.Unlike(ctx.Request.Context(), req.SessionID, req.ArticleID); err != nil {
		respondServiceError(ctx, err, loc)
		return
	}

	utils.InvalidateByPrefix(articleListCachePrefix)
	utils.Success(ctx, SignalUnlikeSuccess, nil)
}
