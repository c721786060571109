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

	"frigo/internal/api"
	"frigo/internal/fridge"
	"frigo/internal/monitoring"
	"frigo/internal/recipes"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"gopkg.in/yaml.v3"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize LLM (optional: recipe suggestions degrade gracefully without one)
	model, err := initializeLLM(config)
	if err != nil {
		log.Fatalf("Failed to initialize LLM: %v", err)
	}
	if model == nil {
		log.Println("No OpenAI key configured; recipe suggestions disabled")
	}

	// Initialize store and collaborators
	store := fridge.NewStore(fridge.SeedFridge())
	metrics := monitoring.NewCollector()
	suggester := recipes.NewSuggester(model)

	a := api.New(api.Config{
		Store:      store,
		Suggester:  suggester,
		Metrics:    metrics,
		BaseURL:    config.BaseURL,
		StaticDir:  config.StaticDir,
		AuthSecret: config.Auth.Secret,
	})

	// Start metrics server
	go startMetricsServer(*metricsPort, metrics)

	// Start API server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: a.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Starting fridge MCP server on port %d", *port)
	log.Printf("MCP endpoint: http://localhost:%d/mcp", *port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func loadConfig(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Run on defaults; the demo needs no config file.
			config.applyEnv()
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	config.applyEnv()
	return config, nil
}

func initializeLLM(config *Config) (llms.Model, error) {
	if config.OpenAIKey == "" {
		return nil, nil
	}

	modelName := config.Model
	if modelName == "" {
		modelName = "gpt-4-turbo-preview"
	}

	llm, err := openai.New(
		openai.WithModel(modelName),
		openai.WithToken(config.OpenAIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	return llm, nil
}

func startMetricsServer(port int, metrics *monitoring.Collector) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(metrics.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}

// Config represents the application configuration
type Config struct {
	OpenAIKey string `yaml:"openai_key"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	StaticDir string `yaml:"static_dir"`
	Auth      struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
}

// applyEnv lets the environment override secrets so they stay out of the
// config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIKey = v
	}
	if v := os.Getenv("FRIGO_AUTH_SECRET"); v != "" {
		c.Auth.Secret = v
	}
}
