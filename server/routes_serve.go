// routes_serve.go - Server-Start und Lifecycle-Management
// Enthaelt: Serve() - laedt die native Library und startet den HTTP-Server

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/7blacky7/godaal/envconfig"
	"github.com/7blacky7/godaal/logutil"
	"github.com/7blacky7/godaal/native"
	"github.com/7blacky7/godaal/version"
)

// Serve laedt die konfigurierte Library und bedient ln bis SIGINT/SIGTERM
func Serve(ln net.Listener) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	slog.Info("server config", "env", envconfig.Values())

	lib, err := native.Init()
	if err != nil {
		return err
	}
	slog.Info("native library loaded", "backend", envconfig.Backend(), "version", lib.Version())

	s := &Server{addr: ln.Addr(), lib: lib, backend: envconfig.Backend()}

	ctx, done := context.WithCancel(context.Background())

	slog.Info(fmt.Sprintf("Listening on %s (version %s)", ln.Addr(), version.Version))
	srvr := &http.Server{
		Handler: s.GenerateRoutes(),
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		srvr.Close()
		done()
	}()

	err = srvr.Serve(ln)
	if err != http.ErrServerClosed {
		return err
	}
	<-ctx.Done()
	return nil
}
