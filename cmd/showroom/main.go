// Command showroom runs the terminal chat frontend for the Showroom Mobil
// Sungkang customer-service assistant.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sungkangmobil/showroom-assistant/pkg/assistant"
	"github.com/sungkangmobil/showroom-assistant/pkg/catalog"
	"github.com/sungkangmobil/showroom-assistant/pkg/providers/gemini"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: showroom [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "", "path to configuration file (default: built-in settings plus GEMINI_API_KEY)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	verbose := flag.Bool("verbose", false, "log every model attempt to showroom.log")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	snap, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseURL := cfg.Gemini.BaseURL
	if baseURL == "" {
		baseURL = gemini.DefaultBaseURL
	}
	adapter := gemini.New(baseURL, cfg.Gemini.APIKey)

	attemptTimeout, err := cfg.ParseAttemptTimeout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := assistant.Options{AttemptTimeout: attemptTimeout}
	if *verbose {
		f, err := tea.LogToFile("showroom.log", "showroom")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		opts.Observer = func(att assistant.Attempt) {
			if att.Err != nil {
				log.Printf("attempt model=%s kind=%s latency=%s err=%v", att.Model, att.Kind, att.Latency, att.Err)
				return
			}
			log.Printf("attempt model=%s ok latency=%s", att.Model, att.Latency)
		}
	}

	asst, err := assistant.New(adapter, cfg.Models, snap, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newAppModel(ctx, asst, adapter), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// loadConfig reads the config file, or assembles the built-in defaults when
// no file is given: production base URL, GEMINI_API_KEY from the
// environment, and the default candidate list.
func loadConfig(path string) (assistant.Config, error) {
	if path != "" {
		cfg, err := assistant.LoadConfig(path)
		if err != nil {
			return assistant.Config{}, err
		}
		if len(cfg.Models) == 0 {
			cfg.Models = assistant.DefaultModels()
		}
		if err := cfg.Validate(); err != nil {
			return assistant.Config{}, err
		}
		return cfg, nil
	}

	cfg := assistant.Config{
		Gemini: assistant.GeminiConfig{APIKey: os.Getenv("GEMINI_API_KEY")},
		Models: assistant.DefaultModels(),
	}
	if cfg.Gemini.APIKey == "" {
		return assistant.Config{}, fmt.Errorf("GEMINI_API_KEY is not set (add it to .env or the environment)")
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog file or the built-in snapshot.
func loadCatalog(cfg assistant.Config) (catalog.Snapshot, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}

	snap, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return catalog.Snapshot{}, err
	}
	if err := snap.Validate(); err != nil {
		return catalog.Snapshot{}, err
	}
	return snap, nil
}

// formatDuration renders a turn duration for the status bar.
func formatDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
