package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/config"
	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

// ConfigController serves environment-driven public page configuration.
type ConfigController struct{}

func NewConfigController() *ConfigController { return &ConfigController{} }

// GetProfile returns the profile page block, with the bio localized.
func (c *ConfigController) GetProfile(ctx *gin.Context) {
	cfg := config.Get()
	loc, err := services.ParseLocale(ctx.Query("locale"))
	if err != nil {
		respondServiceError(ctx, err, services.LocaleEN)
		return
	}

	bio := cfg.ProfileBioEN
	if loc == services.LocaleTR && cfg.ProfileBioTR != "" {
		bio = cfg.ProfileBioTR
	}

	utils.Success(ctx, SignalSuccess, gin.H{
		"name":       cfg.ProfileName,
		"title":      cfg.ProfileTitle,
		"bio":        bio,
		"avatar_url": cfg.ProfileAvatarURL,
		"email":      cfg.ProfileEmail,
		"location":   cfg.ProfileLocation,
	})
}

// GetSocialLinks returns the configured social links as name/url pairs.
func (c *ConfigController) GetSocialLinks(ctx *gin.Context) {
	cfg := config.Get()
	links := make([]gin.H, 0, len(cfg.SocialLinks))
	for _, raw := range cfg.SocialLinks {
		name, url, found := strings.Cut(raw, "|")
		if !found {
			continue
		}
		links = append(links, gin.H{"name": strings.TrimSpace(name), "url": strings.TrimSpace(url)})
	}
	utils.Success(ctx, SignalSuccess, gin.H{"links": links})
}
