package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ertansel/siteapi/models"
	"github.com/ertansel/siteapi/utils"
)

// StatsController provides aggregate site statistics for the admin dashboard.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns article, comment and session counts plus today's traffic.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var articleCount int64
	var commentCount int64
	var sessionCount int64
	var totalLikes int64
	var totalViews int64
	var todayViews int64

	// Fall back to 0 per counter instead of failing the whole endpoint.
	if err := s.db.Model(&models.Article{}).Count(&articleCount).Error; err != nil {
		articleCount = 0
	}
	if err := s.db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		commentCount = 0
	}
	if err := s.db.Model(&models.EngagementSession{}).Count(&sessionCount).Error; err != nil {
		sessionCount = 0
	}
	if err := s.db.Model(&models.Article{}).Select("COALESCE(SUM(like_count),0)").Scan(&totalLikes).Error; err != nil {
		totalLikes = 0
	}
	if err := s.db.Model(&models.Article{}).Select("COALESCE(SUM(view_count),0)").Scan(&totalViews).Error; err != nil {
		totalViews = 0
	}

	// String date equality avoids timezone/type mismatches with the DATE column.
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.PageView{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count),0)").
		Scan(&todayViews).Error; err != nil {
		todayViews = 0
	}

	utils.Success(ctx, SignalSuccess, gin.H{
		"article_count": articleCount,
		"comment_count": commentCount,
		"session_count": sessionCount,
		"total_likes":   totalLikes,
		"total_views":   totalViews,
		"today_views":   todayViews,
	})
}
