package api

import (
	"net/http"

	"frigo/internal/auth"
	"frigo/internal/fridge"
	"frigo/internal/mcp"
	"frigo/internal/monitoring"
	"frigo/internal/recipes"

	"github.com/gin-gonic/gin"
)

// API is the HTTP surface of the fridge server: the MCP endpoint, the
// widget resources, the WebSocket feed, and a health check.
type API struct {
	Router *gin.Engine
	Hub    *Hub

	mcpServer *mcp.Server
	baseURL   string
	staticDir string
}

// Config carries the API's collaborators and deployment knobs.
type Config struct {
	Store     *fridge.Store
	Suggester *recipes.Suggester
	Metrics   *monitoring.Collector

	// BaseURL is the externally visible origin the widget loads assets from.
	BaseURL string
	// StaticDir, when non-empty, is served under /static (the widget bundle).
	StaticDir string
	// AuthSecret, when non-empty, requires a bearer JWT on /mcp.
	AuthSecret string
}

// New builds the API, the widget hub, and the MCP server behind /mcp.
func New(cfg Config) *API {
	hub := NewHub(cfg.Store, cfg.Suggester, cfg.Metrics)

	mcpServer := mcp.NewServer(mcp.Config{
		Store:      cfg.Store,
		Suggester:  cfg.Suggester,
		Metrics:    cfg.Metrics,
		BaseURL:    cfg.BaseURL,
		OnMutation: hub.Broadcast,
	})

	a := &API{
		Router:    gin.Default(),
		Hub:       hub,
		mcpServer: mcpServer,
		baseURL:   cfg.BaseURL,
		staticDir: cfg.StaticDir,
	}

	a.Router.Use(corsMiddleware())
	a.setupRoutes(cfg.AuthSecret)
	return a
}

// setupRoutes configures all API endpoints
func (a *API) setupRoutes(authSecret string) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "server": "frigo"})
	})

	a.Router.Any("/mcp", auth.Middleware(authSecret), gin.WrapH(a.mcpServer.HTTPHandler()))

	a.Router.GET("/test-widget", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(mcp.WidgetHTML(a.baseURL)))
	})

	if a.staticDir != "" {
		a.Router.Static("/static", a.staticDir)
	}

	a.Router.GET("/ws", a.Hub.HandleWS)
}

// corsMiddleware allows the widget to call home from any embedding origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Mcp-Session-Id, Mcp-Protocol-Version")
		c.Header("Access-Control-Expose-Headers", "Mcp-Session-Id")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
