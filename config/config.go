package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values. Sensitive data has
// no in-code defaults and must come from the config file or the environment.
type AppConfig struct {
	AppPort     string
	JWTSecret   string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Redis for caching / cooldowns / token blacklist
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// Rate limiting and anti-abuse
	RateLimitPerMinute int
	CommentCooldownSec int
	AllowedOrigins     []string
	// Gin framework configuration
	GinMode string
	GinPath string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	// Admin dashboard account
	AdminUsername     string
	AdminPasswordHash string
	// Spotify now-playing widget
	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyRefreshToken string
	// Profile page
	ProfileName      string
	ProfileTitle     string
	ProfileBioEN     string
	ProfileBioTR     string
	ProfileAvatarURL string
	ProfileEmail     string
	ProfileLocation  string
	// Social links, "name|url" pairs
	SocialLinks []string
}

var cfg AppConfig
var loaded bool

// Load reads configuration once during boot. Precedence:
// config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// loadJSONConfig reads a flat JSON file into out when present. Missing file
// is not an error; invalid JSON is.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}
	getInt := func(key string) int {
		switch v := raw[key].(type) {
		case float64:
			return int(v)
		case string:
			n, _ := strconv.Atoi(v)
			return n
		}
		return 0
	}
	getBool := func(key string) bool {
		if v, ok := raw[key].(bool); ok {
			return v
		}
		return false
	}
	getList := func(key string) []string {
		if v, ok := raw[key].([]any); ok {
			var list []string
			for _, item := range v {
				if s, ok := item.(string); ok && s != "" {
					list = append(list, s)
				}
			}
			return list
		}
		if s := getString(key); s != "" {
			return splitAndTrim(s)
		}
		return nil
	}

	out.AppPort = getString("app_port")
	out.JWTSecret = getString("jwt_secret")
	out.DatabaseURI = getString("database_uri")
	out.DBHost = getString("db_host")
	out.DBPort = getString("db_port")
	out.DBUser = getString("db_user")
	out.DBPassword = getString("db_password")
	out.DBName = getString("db_name")
	out.RedisHost = getString("redis_host")
	out.RedisPort = getInt("redis_port")
	out.RedisDB = getInt("redis_db")
	out.RedisPassword = getString("redis_password")
	out.RateLimitPerMinute = getInt("rate_limit_per_minute")
	out.CommentCooldownSec = getInt("comment_cooldown_sec")
	out.AllowedOrigins = getList("allowed_origins")
	out.GinMode = getString("gin_mode")
	out.GinPath = getString("gin_path")
	out.LogLevel = getString("log_level")
	out.LogPath = getString("log_path")
	out.LogMaxSizeMB = getInt("log_max_size_mb")
	out.LogMaxBackups = getInt("log_max_backups")
	out.LogMaxAgeDays = getInt("log_max_age_days")
	out.LogCompress = getBool("log_compress")
	out.AdminUsername = getString("admin_username")
	out.AdminPasswordHash = getString("admin_password_hash")
	out.SpotifyClientID = getString("spotify_client_id")
	out.SpotifyClientSecret = getString("spotify_client_secret")
	out.SpotifyRefreshToken = getString("spotify_refresh_token")
	out.ProfileName = getString("profile_name")
	out.ProfileTitle = getString("profile_title")
	out.ProfileBioEN = getString("profile_bio_en")
	out.ProfileBioTR = getString("profile_bio_tr")
	out.ProfileAvatarURL = getString("profile_avatar_url")
	out.ProfileEmail = getString("profile_email")
	out.ProfileLocation = getString("profile_location")
	out.SocialLinks = getList("social_links")
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "siteapi"
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 30
	}
	if c.CommentCooldownSec == 0 {
		c.CommentCooldownSec = 15
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/gin.log"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/app.log"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
}

func applyEnvOverrides(c *AppConfig) {
	c.AppPort = getEnv("APP_PORT", c.AppPort)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.DatabaseURI = getEnv("DATABASE_URI", c.DatabaseURI)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.RedisHost = getEnv("REDIS_HOST", c.RedisHost)
	c.RedisPort = getEnvInt("REDIS_PORT", c.RedisPort)
	c.RedisDB = getEnvInt("REDIS_DB", c.RedisDB)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.RateLimitPerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", c.RateLimitPerMinute)
	c.CommentCooldownSec = getEnvInt("COMMENT_COOLDOWN_SEC", c.CommentCooldownSec)
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.GinPath = getEnv("GIN_PATH", c.GinPath)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogPath = getEnv("LOG_PATH", c.LogPath)
	c.LogMaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", c.LogMaxSizeMB)
	c.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", c.LogMaxBackups)
	c.LogMaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", c.LogMaxAgeDays)
	if v := os.Getenv("LOG_COMPRESS"); v != "" {
		c.LogCompress = v == "1" || strings.EqualFold(v, "true")
	}
	c.AdminUsername = getEnv("ADMIN_USERNAME", c.AdminUsername)
	c.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", c.AdminPasswordHash)
	c.SpotifyClientID = getEnv("SPOTIFY_CLIENT_ID", c.SpotifyClientID)
	c.SpotifyClientSecret = getEnv("SPOTIFY_CLIENT_SECRET", c.SpotifyClientSecret)
	c.SpotifyRefreshToken = getEnv("SPOTIFY_REFRESH_TOKEN", c.SpotifyRefreshToken)
	c.ProfileName = getEnv("PROFILE_NAME", c.ProfileName)
	c.ProfileTitle = getEnv("PROFILE_TITLE", c.ProfileTitle)
	c.ProfileBioEN = getEnv("PROFILE_BIO_EN", c.ProfileBioEN)
	c.ProfileBioTR = getEnv("PROFILE_BIO_TR", c.ProfileBioTR)
	c.ProfileAvatarURL = getEnv("PROFILE_AVATAR_URL", c.ProfileAvatarURL)
	c.ProfileEmail = getEnv("PROFILE_EMAIL", c.ProfileEmail)
	c.ProfileLocation = getEnv("PROFILE_LOCATION", c.ProfileLocation)
	if v := os.Getenv("SOCIAL_LINKS"); v != "" {
		c.SocialLinks = splitAndTrim(v)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
