package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/config"
	"github.com/Juan171109/automation-task/internal/guard"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig       config.ServerConfig
	LoginHandler       http.Handler
	ShopHandler        http.Handler
	BasketHandler      http.Handler
	BasketAddHandler   http.Handler
	BasketClearHandler http.Handler
	LogoutHandler      http.Handler
	BasketAPIHandler   http.Handler
	Guard              *guard.Guard
	StateOf            func(*http.Request) guard.State
}

// RunServe starts the storefront web server
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// NewRouter maps every route to its handler and puts the navigation guard in
// front when one is configured
func NewRouter(deps ServerDependencies) http.Handler {
	staticDir := deps.ServerConfig.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}

	mux := http.NewServeMux()
	mux.Handle("/", deps.LoginHandler)
	mux.Handle("/shop.html", deps.ShopHandler)
	mux.Handle("/basket.html", deps.BasketHandler)
	mux.Handle("/basket/add", deps.BasketAddHandler)
	mux.Handle("/basket/clear", deps.BasketClearHandler)
	mux.Handle("/logout", deps.LogoutHandler)
	mux.Handle("/api/basket", deps.BasketAPIHandler)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	if deps.Guard == nil || deps.StateOf == nil {
		return mux
	}
	return deps.Guard.Middleware(mux, deps.StateOf)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("server listening", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			zap.S().Errorw("server error", "error", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	zap.S().Infow("shutting down server", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not report listener close errors, so this
		// only fails if the server was never usable
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	zap.S().Info("server stopped")
	return nil
}
