package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/utils"
)

const spotifyCacheKey = "cache:spotify:now-playing"

// SpotifyController proxies the "now playing" widget so the client never
// sees Spotify credentials.
type SpotifyController struct{}

func NewSpotifyController() *SpotifyController { return &SpotifyController{} }

// NowPlaying returns the currently playing track, cached briefly so widget
// polling does not hammer the Spotify API.
func (s *SpotifyController) NowPlaying(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(spotifyCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	np, err := utils.FetchNowPlaying(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Warnf("spotify now-playing fetch failed: %v", err)
		utils.Success(ctx, SignalSuccess, utils.NowPlaying{IsPlaying: false})
		return
	}

	utils.CacheSetJSON(spotifyCacheKey, utils.JSONResponse{Code: 0, Message: SignalSuccess, Data: np}, 30*time.Second)
	utils.Success(ctx, SignalSuccess, np)
}
