package api

import (
	"net/http"

	"cafeteria/internal/catalog"
	"cafeteria/internal/chat"
	"cafeteria/internal/config"
	"cafeteria/internal/monitoring"
	"cafeteria/internal/notify"
	"cafeteria/internal/orders"
	"cafeteria/internal/storage"
	"cafeteria/internal/voice"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP surface: the public storefront API plus the
// admin back-office
type Server struct {
	Router *gin.Engine

	config   *config.Config
	store    *storage.Store
	catalog  *catalog.Catalog
	orders   *orders.Store
	intake   *orders.Pipeline
	sessions *chat.Registry
	hub      *notify.Hub
	metrics  *monitoring.Metrics
	speech   voice.Synthesizer
	ws       *WSHub
}

// NewServer creates a server instance and configures its routes
func NewServer(
	cfg *config.Config,
	store *storage.Store,
	cat *catalog.Catalog,
	orderStore *orders.Store,
	intake *orders.Pipeline,
	sessions *chat.Registry,
	hub *notify.Hub,
	metrics *monitoring.Metrics,
	speech voice.Synthesizer,
) *Server {
	server := &Server{
		Router:   gin.Default(),
		config:   cfg,
		store:    store,
		catalog:  cat,
		orders:   orderStore,
		intake:   intake,
		sessions: sessions,
		hub:      hub,
		metrics:  metrics,
		speech:   speech,
		ws:       NewWSHub(hub),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Stanley Cafeteria API is running"})
	})

	s.Router.GET("/ws", s.authRequired(), s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	{
		// Public storefront
		v1.GET("/menu", s.GetMenu)
		v1.GET("/content", s.GetContent)
		v1.POST("/chat/sessions", s.StartChatSession)
		v1.POST("/chat/sessions/:id/messages", s.SendChatMessage)
		v1.DELETE("/chat/sessions/:id", s.EndChatSession)

		// Auth
		v1.POST("/auth/login", s.Login)
		v1.POST("/auth/logout", s.authRequired(), s.Logout)

		// Admin back-office
		admin := v1.Group("/admin", s.authRequired())
		{
			admin.GET("/stats", s.GetStats)

			admin.GET("/orders", s.ListOrders)
			admin.POST("/orders/:id/status", s.TransitionOrder)
			admin.GET("/orders/:id/receipt", s.GetReceipt)

			admin.POST("/menu", s.AddMenuItem)
			admin.PUT("/menu/:id", s.UpdateMenuItem)
			admin.DELETE("/menu/:id", s.DeleteMenuItem)

			admin.GET("/brain", s.GetSystemBrain)
			admin.PUT("/brain", s.SaveSystemBrain)

			admin.GET("/content", s.GetContent)
			admin.POST("/content", s.AddContent)
			admin.DELETE("/content/:id", s.DeleteContent)
			admin.POST("/content/:id/voiceover", s.GenerateVoiceover)

			admin.GET("/export/orders.csv", s.ExportOrders)
			admin.GET("/export/menu.csv", s.ExportMenu)
		}
	}
}
