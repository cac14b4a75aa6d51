package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/anisuggest/internal/config"
	"github.com/lepinkainen/anisuggest/internal/jikan"
	"github.com/lepinkainen/anisuggest/internal/ratelimit"
	"github.com/lepinkainen/anisuggest/internal/recommend"
	"github.com/lepinkainen/anisuggest/internal/server"
	"github.com/lepinkainen/anisuggest/internal/tui"
)

var (
	runServer  = serveHTTP
	submitSeed = suggestOnce
)

// CLI represents the complete command structure for the anisuggest application
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the recommendation web server"`
	Suggest SuggestCmd `cmd:"" help:"Print recommendations for one seed title"`
}

// ServeCmd runs the HTTP presentation layer.
type ServeCmd struct {
	Listen string `short:"l" help:"HTTP listen address (overrides server.listen in config)"`
}

// SuggestCmd resolves one seed title and prints the ranked recommendations.
type SuggestCmd struct {
	Name  []string `arg:"" help:"Seed anime title"`
	Limit int      `short:"n" help:"Number of recommendations (overrides recommend.limit in config)"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("anisuggest"),
		kong.Description("Recommends anime titles based on one seed title you already like."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func (s *ServeCmd) Run() error {
	if s.Listen != "" {
		config.SetListenAddr(s.Listen)
	}
	return runServer(config.ListenAddr)
}

func (s *SuggestCmd) Run() error {
	name := strings.TrimSpace(strings.Join(s.Name, " "))
	if name == "" {
		return fmt.Errorf("seed title is required")
	}

	limit := s.Limit
	if limit <= 0 {
		limit = config.RecommendLimit
	}

	result := submitSeed(context.Background(), name, limit)
	fmt.Print(tui.RenderResult(result))
	return nil
}

func newClient() *jikan.Client {
	return jikan.NewClient(
		jikan.WithBaseURL(config.JikanBaseURL),
		jikan.WithRateLimiter(ratelimit.NewEvery("Jikan", config.GenreQueryDelay)),
	)
}

func serveHTTP(listen string) error {
	service := recommend.NewService(newClient(), config.RecommendLimit)
	srv, err := server.New(service)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(listen)
}

func suggestOnce(ctx context.Context, name string, limit int) recommend.Result {
	service := recommend.NewService(newClient(), limit)
	return service.SubmitSeedTitle(ctx, name)
}

func initConfig() {
	viper.SetDefault("jikan.baseurl", "https://api.jikan.moe/v4")
	viper.SetDefault("jikan.querydelay", "500ms")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("recommend.limit", 5)

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("jikan.baseurl", "JIKAN_BASE_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
