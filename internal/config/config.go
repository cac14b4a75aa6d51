package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// JikanBaseURL is the base URL of the Jikan metadata API
	JikanBaseURL string
	// ListenAddr is the address the HTTP server binds to
	ListenAddr string
	// RecommendLimit is the number of recommendations returned per request
	RecommendLimit int
	// GenreQueryDelay is the minimum spacing between successive upstream calls
	GenreQueryDelay time.Duration
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("jikan.baseurl", "https://api.jikan.moe/v4")
	viper.SetDefault("jikan.querydelay", "500ms")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("recommend.limit", 5)

	// Get values from viper
	JikanBaseURL = viper.GetString("jikan.baseurl")
	ListenAddr = viper.GetString("server.listen")
	RecommendLimit = viper.GetInt("recommend.limit")
	GenreQueryDelay = viper.GetDuration("jikan.querydelay")
}

// SetListenAddr sets the HTTP listen address
func SetListenAddr(addr string) {
	ListenAddr = addr
}

// SetRecommendLimit sets the number of recommendations per request
func SetRecommendLimit(limit int) {
	RecommendLimit = limit
}
