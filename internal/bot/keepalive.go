package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// KeepAliveServer answers hosting-platform health pings while the bot runs.
type KeepAliveServer struct {
	srv *http.Server
}

// NewKeepAliveServer builds the health server for addr. latency reports the
// current gateway heartbeat latency.
func NewKeepAliveServer(addr string, latency func() time.Duration) *KeepAliveServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bot is alive!")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"latency_ms": latency().Milliseconds(),
		})
	})

	return &KeepAliveServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the HTTP handler.
func (k *KeepAliveServer) Handler() http.Handler {
	return k.srv.Handler
}

// Start serves in the background.
func (k *KeepAliveServer) Start() {
	go func() {
		slog.Info("started keep-alive server", "addr", k.srv.Addr)
		if err := k.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("keep-alive server stopped", "error", err)
		}
	}()
}

// Shutdown stops the server.
func (k *KeepAliveServer) Shutdown(ctx context.Context) error {
	return k.srv.Shutdown(ctx)
}
