package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Equal(t, "https://api.jikan.moe/v4", JikanBaseURL)
	assert.Equal(t, ":8080", ListenAddr)
	assert.Equal(t, 5, RecommendLimit)
	assert.Equal(t, 500*time.Millisecond, GenreQueryDelay)
}

func TestInitConfigReadsOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("jikan.baseurl", "http://localhost:9090/v4")
	viper.Set("recommend.limit", 10)

	InitConfig()

	assert.Equal(t, "http://localhost:9090/v4", JikanBaseURL)
	assert.Equal(t, 10, RecommendLimit)
}

func TestSetListenAddr(t *testing.T) {
	originalValue := ListenAddr

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "custom port",
			input:    ":9999",
			expected: ":9999",
		},
		{
			name:     "host and port",
			input:    "127.0.0.1:8080",
			expected: "127.0.0.1:8080",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetListenAddr(tc.input)

			assert.Equal(t, tc.expected, ListenAddr)
		})
	}

	ListenAddr = originalValue
}

func TestSetRecommendLimit(t *testing.T) {
	originalValue := RecommendLimit

	SetRecommendLimit(3)
	assert.Equal(t, 3, RecommendLimit)

	RecommendLimit = originalValue
}
