package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting opens every new chat session
const Greeting = "Welcome to Stanley Cafeteria! How can I help you order today?"

// Public storefront handlers

func (s *Server) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.List())
}

func (s *Server) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.HomePageContent())
}

// Chat handlers

func (s *Server) StartChatSession(c *gin.Context) {
	// The persona and menu are snapshotted here and fixed for the session's
	// lifetime; later catalog edits do not affect running conversations.
	id, _ := s.sessions.Create(s.store.SystemBrain(), s.catalog.List())
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"greeting":   Greeting,
	})
}

func (s *Server) SendChatMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	reply := session.Send(c.Request.Context(), req.Text)
	s.metrics.ChatTurns.Inc()

	order, display := s.intake.Process(reply)
	if order != nil {
		c.JSON(http.StatusOK, gin.H{"reply": display, "order": order})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": display})
}

func (s *Server) EndChatSession(c *gin.Context) {
	s.sessions.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}
