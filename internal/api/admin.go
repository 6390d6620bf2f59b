package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"sort"

	"cafeteria/internal/export"
	"cafeteria/internal/models"
	"cafeteria/internal/orders"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Admin dashboard handlers

func (s *Server) GetStats(c *gin.Context) {
	all := s.orders.List()
	var pending, delivered int
	for _, order := range all {
		switch order.Status {
		case models.OrderStatusPending:
			pending++
		case models.OrderStatusDelivered:
			delivered++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"total_orders":     len(all),
		"pending_approval": pending,
		"completed_orders": delivered,
	})
}

// Order management handlers

func (s *Server) ListOrders(c *gin.Context) {
	list := s.orders.List()
	// Most-recent-first is a presentation choice, not a store invariant
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Timestamp.After(list[j].Timestamp)
	})
	c.JSON(http.StatusOK, list)
}

func (s *Server) TransitionOrder(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Transition(c.Param("id"), req.Status)
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if errors.Is(err, orders.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) GetReceipt(c *gin.Context) {
	order, ok := s.orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=receipt-"+order.ID+".txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Receipt(order)))
}

// Menu management handlers

func (s *Server) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.catalog.Add(item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = c.Param("id")

	if err := s.catalog.Update(item); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) DeleteMenuItem(c *gin.Context) {
	if err := s.catalog.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// System brain handlers

func (s *Server) GetSystemBrain(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brain": s.store.SystemBrain()})
}

func (s *Server) SaveSystemBrain(c *gin.Context) {
	var req struct {
		Brain string `json:"brain" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.SaveSystemBrain(req.Brain)
	c.JSON(http.StatusOK, gin.H{"message": "System brain saved"})
}

// Homepage content handlers

func (s *Server) AddContent(c *gin.Context) {
	var slide models.HomePageContent
	if err := c.ShouldBindJSON(&slide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if slide.Type != models.ContentTypeImage && slide.Type != models.ContentTypeVideo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content type must be image or video"})
		return
	}
	slide.ID = "CONTENT-" + uuid.NewString()

	content := append(s.store.HomePageContent(), slide)
	s.store.SaveHomePageContent(content)
	c.JSON(http.StatusCreated, slide)
}

func (s *Server) DeleteContent(c *gin.Context) {
	id := c.Param("id")
	content := s.store.HomePageContent()
	for i, slide := range content {
		if slide.ID == id {
			s.store.SaveHomePageContent(append(content[:i], content[i+1:]...))
			c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
}

func (s *Server) GenerateVoiceover(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.speech == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Speech service not configured"})
		return
	}

	id := c.Param("id")
	content := s.store.HomePageContent()
	for i, slide := range content {
		if slide.ID != id {
			continue
		}
		audio, err := s.speech.Speak(c.Request.Context(), req.Text)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate voiceover"})
			return
		}
		content[i].Voiceover = encodeAudio(audio)
		s.store.SaveHomePageContent(content)
		c.JSON(http.StatusOK, content[i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
}

func encodeAudio(audio []byte) string {
	return base64.StdEncoding.EncodeToString(audio)
}

// Export handlers

func (s *Server) ExportOrders(c *gin.Context) {
	data, err := export.OrdersCSV(s.orders.List())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=orders.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (s *Server) ExportMenu(c *gin.Context) {
	data, err := export.MenuCSV(s.catalog.List())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=menu.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
