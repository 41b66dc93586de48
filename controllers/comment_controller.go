package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

// CommentController routes comment reads and writes through the moderation
// gate.
type CommentController struct {
	moderation *services.Moderation
	listing    *services.Listing

	cooldownActive func(sessionID string) bool
	cooldownStart  func(sessionID string)
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(moderation *services.Moderation, listing *services.Listing) *CommentController {
	return &CommentController{
		moderation:     moderation,
		listing:        listing,
		cooldownActive: utils.CommentCooldownActive,
		cooldownStart:  utils.CommentCooldownStart,
	}
}

// CreateComment submits a comment through the moderation gate.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req struct {
		ArticleID  string `json:"article_id" binding:"required"` // external slug
		SessionID  string `json:"session_id" binding:"required"`
		Body       string `json:"body" binding:"required"`
		AuthorName string `json:"author_name" binding:"required"`
		Locale     string `json:"locale"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, SignalFailure)
		return
	}

	loc, err := services.ParseLocale(req.Locale)
	if err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}

	// Flood cooldown sits in front of the gate so the gate's rejection
	// ordering stays fixed.
	if c.cooldownActive(req.SessionID) {
		utils.Error(ctx, http.StatusTooManyRequests, 42902, "COMMENT_COOLDOWN")
		return
	}

	comment, err := c.moderation.Submit(ctx.Request.Context(), services.CommentSubmission{
		ArticleSlug: req.ArticleID,
		SessionID:   req.SessionID,
		Body:        utils.Sanitize(req.Body),
		AuthorName:  utils.Sanitize(req.AuthorName),
	})
	if err != nil {
		respondServiceError(ctx, err, loc)
		return
	}

	// The window opens only on acceptance; a rejected submission can be
	// corrected and resubmitted immediately.
	c.cooldownStart(req.SessionID)

	utils.Success(ctx, SignalShareSuccess, gin.H{"comment": comment})
}

// DeleteComment removes a comment if the requesting session owns it.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	commentID := strings.TrimSpace(ctx.Param("id"))
	if commentID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40004, SignalFailure)
		return
	}
	sessionID := ctx.Query("session_id")
	loc, _ := services.ParseLocale(ctx.Query("locale"))

	if err := c.moderation.Delete(ctx.Request.Context(), commentID, sessionID); err != nil {
		respondServiceError(ctx, err, loc)
		return
	}

	utils.Success(ctx, SignalDeleteSuccess, nil)
}

// ListComments returns one article's comments, paginated, newest first.
func (c *CommentController) ListComments(ctx *gin.Context) {
	articleID, err := strconv.ParseUint(ctx.Query("article_id"), 10, 64)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40005, SignalFailure)
		return
	}
	page := 1
	if p, err := strconv.Atoi(ctx.Query("page")); err == nil {
		page = p
	}
	sessionID := ctx.Query("session_id")

	result, err := c.listing.Comments(ctx.Request.Context(), uint(articleID), sessionID, page)
	if err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}

	utils.Success(ctx, SignalSuccess, result)
}
