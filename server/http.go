package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ChatService is what the HTTP surface needs from the conversation layer.
// Ask is infallible by contract; failures arrive as apologetic answers.
type ChatService interface {
	Ask(ctx context.Context, sessionID, query string) (sid string, answer string)
	Reset(sessionID string) bool
}

type Config struct {
	Addr string `envconfig:"ADDR" split_words:"true" default:":8080"`
}

type Server struct {
	addr string
	svc  ChatService
}

func New(cfg Config, svc ChatService) *Server {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		addr = ":8080"
	}
	return &Server{
		addr: addr,
		svc:  svc,
	}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/chat", func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		sid, answer := s.svc.Ask(c.Request.Context(), req.SessionID, req.Message)
		c.JSON(http.StatusOK, chatResponse{
			SessionID: sid,
			Answer:    answer,
		})
	})

	r.POST("/api/reset", func(c *gin.Context) {
		var req resetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !s.svc.Reset(req.SessionID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	return r
}

func (s *Server) Run() error {
	return s.Router().Run(s.addr)
}
