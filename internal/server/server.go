package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ayross-237/Connect4/internal/game"
	"github.com/Ayross-237/Connect4/internal/storage"
)

const maxStandingsLimit = 100

// Server exposes archived results over HTTP. It never hosts live games.
type Server struct {
	router       *gin.Engine
	store        storage.Store
	rules        game.Rules
	defaultLimit int
}

type Config struct {
	Store          storage.Store
	Rules          game.Rules
	StandingsLimit int
}

func New(cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	store := cfg.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}
	limit := cfg.StandingsLimit
	if limit <= 0 {
		limit = 10
	}
	s := &Server{
		router:       router,
		store:        store,
		rules:        cfg.Rules,
		defaultLimit: limit,
	}

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/rules", s.handleRules)
	router.GET("/standings", s.handleStandings)
	return s
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"boardSize": s.rules.Size,
		"winLength": s.rules.RequiredLength,
	})
}

func (s *Server) handleStandings(c *gin.Context) {
	limit := s.defaultLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxStandingsLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 0 and 100"})
			return
		}
		limit = n
	}

	st, err := s.store.Standings(c.Request.Context(), limit)
	if err != nil {
		log.Printf("standings db error: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "standings unavailable"})
		return
	}
	if st.Recent == nil {
		st.Recent = []storage.CompletedGame{}
	}
	c.JSON(http.StatusOK, st)
}
