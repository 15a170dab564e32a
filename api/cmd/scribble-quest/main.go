package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"scribble-quest/api/internal/config"
	"scribble-quest/api/internal/game"
	"scribble-quest/api/internal/handle"
	"scribble-quest/api/internal/llm"
	"scribble-quest/api/internal/llm/gemini"
	"scribble-quest/api/internal/llm/openai"
	"scribble-quest/api/internal/notify"
	"scribble-quest/api/internal/store"
)

func main() {
	cfg := config.Load()

	// --- Engines ---
	engines := &llm.Engines{}
	if cfg.OpenAIAPIKey != "" {
		engines.OpenAI = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITextModel, cfg.OpenAIImageModel)
	}
	if cfg.GeminiAPIKey != "" {
		engines.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	provider, err := engines.Get(cfg.Provider)
	if err != nil || provider == nil {
		log.Fatalf("provider %q unavailable: %v", cfg.Provider, err)
	}

	pipeline := &game.Pipeline{
		Judge:             provider,
		Artist:            engines.Artist(),
		InkPixelThreshold: cfg.InkPixelThreshold,
	}
	if pipeline.Artist == nil {
		log.Printf("no image-generation engine configured; reward images disabled")
	}

	h := handle.New(pipeline, provider)
	h.ModelName = modelName(cfg)
	h.APIKeyConfigured = true // config.Load is fatal without a provider key

	// --- Optional Postgres results log ---
	if dsn := resolveDSN(cfg.DatabaseURL); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		repo := store.NewResultsRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		h.Results = repo
		log.Printf("results log enabled")
	}

	// --- Optional Telegram announcer ---
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		a, err := notify.New(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		h.Announcer = a
		log.Printf("telegram announcements enabled")
	}

	// --- Routes ---
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze-drawing", h.AnalyzeDrawing)
	mux.HandleFunc("/api/generate-questions", h.GenerateQuestions)
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/", serveIndex(cfg.StaticDir))
	if fi, err := os.Stat(cfg.StaticDir); err == nil && fi.IsDir() {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	addr := ":" + cfg.Port
	log.Printf("scribble-quest listening on %s (provider=%s)", addr, provider.Name())
	log.Fatal(http.ListenAndServe(addr, allowAllCORS(mux)))
}

func modelName(cfg *config.Config) string {
	if cfg.Provider == "gemini" {
		return cfg.GeminiModel
	}
	return cfg.OpenAIModel
}

// serveIndex hands out the game page when a static dir is present, otherwise
// a plain banner so health probes on / still succeed.
func serveIndex(staticDir string) http.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("scribble quest backend"))
	}
}

func allowAllCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Timeout")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolveDSN prefers an explicit DATABASE_URL, then POSTGRES_* variables.
// Empty means the results log stays disabled.
func resolveDSN(databaseURL string) string {
	if v := strings.TrimSpace(databaseURL); v != "" {
		return v
	}
	dbName := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	if dbName == "" {
		return ""
	}
	user := getenvDefault("POSTGRES_USER", "scribble")
	pass := os.Getenv("POSTGRES_PASSWORD")
	host := getenvDefault("PGHOST", "db")
	port := getenvDefault("PGPORT", "5432")

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
