package utils

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/ertansel/siteapi/config"
)

const (
	spotifyTokenURL      = "https://accounts.spotify.com/api/token"
	spotifyNowPlayingURL = "https://api.spotify.com/v1/me/player/currently-playing"
)

// NowPlaying is the trimmed-down track payload served to the widget.
type NowPlaying struct {
	IsPlaying bool   `json:"is_playing"`
	Track     string `json:"track,omitempty"`
	Artist    string `json:"artist,omitempty"`
	Album     string `json:"album,omitempty"`
	CoverURL  string `json:"cover_url,omitempty"`
	TrackURL  string `json:"track_url,omitempty"`
}

var (
	spotifySource oauth2.TokenSource
	spotifyOnce   sync.Once
)

func spotifyTokenSource() oauth2.TokenSource {
	spotifyOnce.Do(func() {
		cfg := config.Get()
		if cfg.SpotifyClientID == "" || cfg.SpotifyRefreshToken == "" {
			return
		}
		oc := &oauth2.Config{
			ClientID:     cfg.SpotifyClientID,
			ClientSecret: cfg.SpotifyClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: spotifyTokenURL},
		}
		// ReuseTokenSource caches the access token until expiry; only the
		// long-lived refresh token is configured.
		spotifySource = oc.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.SpotifyRefreshToken})
	})
	return spotifySource
}

// FetchNowPlaying asks the Spotify Web API what is currently playing. When
// credentials are missing or nothing is playing it returns a stopped payload
// rather than an error, so the widget degrades quietly.
func FetchNowPlaying(ctx context.Context) (*NowPlaying, error) {
	src := spotifyTokenSource()
	if src == nil {
		return &NowPlaying{IsPlaying: false}, nil
	}

	client := oauth2.NewClient(ctx, src)
	client.Timeout = 5 * time.Second

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spotifyNowPlayingURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// 204 means no active playback
	if resp.StatusCode == http.StatusNoContent {
		return &NowPlaying{IsPlaying: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		if Sugar != nil {
			Sugar.Warnf("spotify now-playing returned status %d", resp.StatusCode)
		}
		return &NowPlaying{IsPlaying: false}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var raw struct {
		IsPlaying bool `json:"is_playing"`
		Item      struct {
			Name    string `json:"name"`
			Album   struct {
				Name   string `json:"name"`
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"item"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	np := &NowPlaying{
		IsPlaying: raw.IsPlaying,
		Track:     raw.Item.Name,
		Album:     raw.Item.Album.Name,
		TrackURL:  raw.Item.ExternalURLs.Spotify,
	}
	if len(raw.Item.Artists) > 0 {
		np.Artist = raw.Item.Artists[0].Name
	}
	if len(raw.Item.Album.Images) > 0 {
		np.CoverURL = raw.Item.Album.Images[0].URL
	}
	return np, nil
}
