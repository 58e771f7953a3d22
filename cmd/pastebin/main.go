// Command pastebin walks a Pastebin account through the full client
// surface: login, create, raw fetch, listing, user details and a cleanup
// delete. Credentials come from PASTEBIN_* environment variables, loaded
// from a .env file when one is present.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	pastebin "github.com/ZayaanRahman/pastebin-client"
	"github.com/ZayaanRahman/pastebin-client/internal/config"
)

const demoText = `package main

import "fmt"

func main() {
	fmt.Println("hello from pastebin-client")
}
`

func main() {
	// A .env file is optional; real environments set the variables directly.
	_ = godotenv.Load()

	logger := newLogger(config.DefaultLogLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = newLogger(cfg.LogLevel)

	opts := []pastebin.Option{
		pastebin.WithTimeout(cfg.Timeout),
		pastebin.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, pastebin.WithBaseURL(cfg.BaseURL))
	}
	c := pastebin.New(cfg.DevKey, opts...)

	ctx := context.Background()

	if err := c.Login(ctx, cfg.Username, cfg.Password); err != nil {
		logger.Fatal().Err(err).Msg("login failed")
	}

	created, err := c.CreatePasteWithOptions(ctx, demoText, pastebin.CreatePasteOptions{
		Name:         "pastebin-client demo",
		Highlighting: "go",
		Visibility:   pastebin.VisibilityUnlisted,
		Lifespan:     pastebin.Lifespan10Minutes,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create failed")
	}
	fmt.Println("created:", created.URL)

	raw, err := c.FetchRaw(ctx, created.Key)
	if err != nil {
		logger.Fatal().Err(err).Msg("raw fetch failed")
	}
	fmt.Println("raw content:")
	fmt.Print(raw)

	pastes, err := c.ListPastes(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("listing failed")
	}
	fmt.Printf("%d paste(s) on the account:\n", len(pastes))
	for _, p := range pastes {
		fmt.Printf("  %s  %-24s  %s\n", p.Key, p.Title, p.Visibility)
	}

	details, err := c.FetchUserDetails(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("user details failed")
	}
	out, _ := json.MarshalIndent(details.Map(), "", "  ")
	fmt.Println("user details:")
	fmt.Println(string(out))

	// Leave the account the way we found it.
	if err := c.DeletePaste(ctx, created.Key); err != nil {
		logger.Fatal().Err(err).Msg("cleanup delete failed")
	}
	fmt.Println("demo paste deleted")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
