package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafeteria/internal/api"
	"cafeteria/internal/catalog"
	"cafeteria/internal/chat"
	"cafeteria/internal/config"
	"cafeteria/internal/monitoring"
	"cafeteria/internal/notify"
	"cafeteria/internal/orders"
	"cafeteria/internal/storage"
	"cafeteria/internal/voice"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var (
	port       = flag.Int("port", 8080, "API server port")
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Initialize context
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize LLM
	model, err := initializeLLM(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM: %v", err)
	}

	// Initialize persistence
	kv, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer kv.Close()
	store := storage.NewStore(kv)

	// Initialize speech service (optional)
	speech := initializeSpeech(cfg)

	// Wire the order intake pipeline
	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	hub := notify.NewHub()
	cat := catalog.New(store)
	orderStore := orders.NewStore(store)
	intake := orders.NewPipeline(cat, orderStore, hub, metrics)
	sessions := chat.NewRegistry(model)

	// Initialize API server
	server := api.NewServer(cfg, store, cat, orderStore, intake, sessions, hub, metrics, speech)

	// Start metrics server
	if cfg.MetricsConfig.Enabled {
		go startMetricsServer(cfg.MetricsConfig.Port)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}

		cancel()
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func initializeLLM(cfg *config.Config) (llms.Model, error) {
	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.OpenAIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return llm, nil
}

func initializeSpeech(cfg *config.Config) voice.Synthesizer {
	speech, err := voice.NewAzureSynthesizer(cfg.Speech.Endpoint, cfg.Speech.APIKey, cfg.Speech.Deployment)
	if err != nil {
		log.Printf("Speech service disabled: %v", err)
		return nil
	}
	return speech
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
