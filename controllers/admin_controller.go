package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/config"
	"github.com/ertansel/siteapi/middleware"
	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

const adminTokenTTL = 24 * time.Hour

// AdminController backs the dashboard: login/logout and comment moderation.
type AdminController struct {
	moderation *services.Moderation
	listing    *services.Listing
}

// NewAdminController creates a new AdminController instance.
func NewAdminController(moderation *services.Moderation, listing *services.Listing) *AdminController {
	return &AdminController{moderation: moderation, listing: listing}
}

// Login verifies the configured admin credentials and issues a JWT.
func (a *AdminController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40006, SignalFailure)
		return
	}

	cfg := config.Get()
	if !strings.EqualFold(req.Username, cfg.AdminUsername) ||
		cfg.AdminPasswordHash == "" ||
		!utils.CheckPassword(cfg.AdminPasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "INVALID_CREDENTIALS")
		return
	}

	token, err := utils.GenerateAdminToken(cfg.AdminUsername, adminTokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, SignalFailure)
		return
	}

	utils.Success(ctx, SignalSuccess, gin.H{"token": token, "expires_in": int(adminTokenTTL.Seconds())})
}

// Logout revokes the presented token until its natural expiration.
func (a *AdminController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 {
		token := strings.TrimSpace(parts[1])
		if claims, err := utils.ParseAdminToken(token); err == nil && claims.ExpiresAt != nil {
			utils.BlacklistToken(token, claims.ExpiresAt.Time)
		}
	}
	utils.Success(ctx, SignalSuccess, nil)
}

// Me returns the authenticated admin identity.
func (a *AdminController) Me(ctx *gin.Context) {
	username := ctx.GetString(middleware.ContextAdminKey)
	utils.Success(ctx, SignalSuccess, gin.H{"username": username})
}

// ListComments returns comments across all articles for moderation.
func (a *AdminController) ListComments(ctx *gin.Context) {
	page := 1
	if p, err := strconv.Atoi(ctx.Query("page")); err == nil {
		page = p
	}

	rows, total, totalPages, err := a.listing.AllComments(ctx.Request.Context(), page)
	if err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}

	utils.Success(ctx, SignalSuccess, gin.H{
		"comments":    rows,
		"total_count": total,
		"total_pages": totalPages,
		"page":        page,
	})
}

// DeleteComment removes any comment, bypassing the ownership check.
func (a *AdminController) DeleteComment(ctx *gin.Context) {
	commentID := strings.TrimSpace(ctx.Param("id"))
	if commentID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40007, SignalFailure)
		return
	}
	if err := a.moderation.AdminDelete(ctx.Request.Context(), commentID); err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}
	utils.Success(ctx, SignalDeleteSuccess, nil)
}
