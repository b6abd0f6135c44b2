// Package mockapi is a stand-in for the remote user directory, so the
// dashboard and integration tests can run without the real
// JSONPlaceholder endpoint.
//
// It mimics the collaborator's non-persistence exactly: GET /users
// always serves the same seed list, POST echoes the body with a fresh
// id, PUT echoes, DELETE acknowledges, and none of them alter the served
// list. Every accepted write additionally goes out as a JSON event on
// the /live websocket feed.
package mockapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go/pkg/models"
)

// Server serves the mock /users resource and the /live feed.
type Server struct {
	cfg    *Config
	logger zerolog.Logger
	engine *gin.Engine
	hub    *hub
	seed   []models.APIUser
}

// NewServer builds the server and its routes.
func NewServer(cfg *Config, logger zerolog.Logger) *Server {
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		engine: gin.New(),
		hub:    newHub(logger),
		seed:   seedUsers(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(cors.Default())

	s.engine.GET("/users", s.listUsers)
	s.engine.POST("/users", s.createUser)
	s.engine.PUT("/users/:id", s.updateUser)
	s.engine.DELETE("/users/:id", s.deleteUser)
	s.engine.GET("/live", s.hub.serve)

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("mock API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// GET /users
func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.seed)
}

// POST /users
func (s *Server) createUser(c *gin.Context) {
	var in models.APIUser
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	// Echo with the next id after the seed; never stored.
	in.ID = len(s.seed) + 1
	s.logger.Info().Int("id", in.ID).Str("name", in.Name).Msg("create echoed")
	s.hub.broadcast(Event{Action: "create", ID: in.ID, User: &in})
	c.JSON(http.StatusCreated, in)
}

// PUT /users/:id
func (s *Server) updateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return
	}

	var in models.APIUser
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	in.ID = id
	s.logger.Info().Int("id", id).Msg("update echoed")
	s.hub.broadcast(Event{Action: "update", ID: id, User: &in})
	c.JSON(http.StatusOK, in)
}

// DELETE /users/:id
func (s *Server) deleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return
	}

	s.logger.Info().Int("id", id).Msg("delete acknowledged")
	s.hub.broadcast(Event{Action: "delete", ID: id})
	c.JSON(http.StatusOK, gin.H{})
}
