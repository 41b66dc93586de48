package utils

import (
	"context"
	"time"

	"github.com/ertansel/siteapi/config"
)

// CommentCooldownActive reports whether the session accepted a comment within
// the cooldown window. Redis failures fail open so a cache outage never
// blocks commenting.
func CommentCooldownActive(sessionID string) bool {
	cfg := config.Get()
	if cfg.CommentCooldownSec <= 0 || sessionID == "" {
		return false
	}
	cli := GetRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	n, err := cli.Exists(ctx, "comment:cooldown:"+sessionID).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// CommentCooldownStart opens the cooldown window for the session. Called only
// after a comment is accepted, so rejected submissions never burn the window.
func CommentCooldownStart(sessionID string) {
	cfg := config.Get()
	sec := cfg.CommentCooldownSec
	if sec <= 0 || sessionID == "" {
		return
	}
	cli := GetRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_ = cli.Set(ctx, "comment:cooldown:"+sessionID, "1", time.Duration(sec)*time.Second).Err()
}
