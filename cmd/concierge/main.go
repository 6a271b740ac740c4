package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dileep-u-k/hotel-concierge/internal/agent"
	"github.com/dileep-u-k/hotel-concierge/internal/cache"
	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
	"github.com/dileep-u-k/hotel-concierge/internal/llm"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// main is the composition root: it loads configuration, initializes every
// service, injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Hotel Concierge | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. BUILD THE CATALOG
	hotelCatalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}
	log.Printf("✅ Catalog loaded with %d locations.", hotelCatalog.Len())

	// 3. INITIALIZE SERVICES
	toolManager := initializeToolManager(hotelCatalog)
	log.Printf("✅ Tool Manager initialized with %d tools.", toolManager.ToolCount())

	client, err := initializeLLMClient(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}
	log.Printf("✅ LLM client initialized for model %s.", cfg.ModelID)

	responseCache, err := initializeCache(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	processor := agent.NewProcessor(client, toolManager, &llm.GenerationConfig{Model: cfg.ModelID})
	handler := NewQueryHandler(processor, responseCache, cfg.ModelID)
	log.Println("✅ All services initialized.")

	// 4. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/query", handler.HandleQuery)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// loadCatalog builds the hotel catalog, preferring a YAML override when one
// is configured.
func loadCatalog(cfg *AppConfig) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("✅ Catalog override loaded from %s.", cfg.CatalogFile)
	return c, nil
}

// initializeToolManager registers the four concierge tools against the
// injected catalog.
func initializeToolManager(c *catalog.Catalog) *tools.ToolManager {
	manager := tools.NewToolManager()
	manager.Register(tools.NewSearchTool(c))
	manager.Register(tools.NewDetailsTool(c))
	manager.Register(tools.NewCostTool())
	manager.Register(tools.NewLocationsTool(c))
	return manager
}

// initializeLLMClient creates the provider client selected by the model id.
func initializeLLMClient(cfg *AppConfig) (llm.LLMClient, error) {
	switch {
	case strings.HasPrefix(cfg.ModelID, "gpt"):
		return llm.NewOpenAIClient(cfg.APIKey)
	case strings.HasPrefix(cfg.ModelID, "gemini"):
		return llm.NewGeminiClient(cfg.APIKey, cfg.ModelID)
	default:
		return nil, fmt.Errorf("unknown model provider for %s", cfg.ModelID)
	}
}

// initializeCache connects the optional Redis response cache. No REDIS_ADDR
// means the cache runs disabled; a configured address that cannot be reached
// is fatal, since the operator asked for it.
func initializeCache(cfg *AppConfig) (*cache.ResponseCache, error) {
	if cfg.RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set, response cache disabled.")
		return cache.NewResponseCache(nil), nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	log.Println("✅ Response cache connected.")
	return cache.NewResponseCache(rdb), nil
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Concierge is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
