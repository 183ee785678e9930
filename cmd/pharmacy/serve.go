package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"pharmacy/internal/handler"
	"pharmacy/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inventory and manager registry over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.session.Close()
		defer a.cache.Close()

		e := echo.New()
		e.HideBanner = true

		// Initialize handlers
		managerHandler := handler.NewManagerHandler(a.managers)
		medicineHandler := handler.NewMedicineHandler(a.inventory)

		router.Register(e, managerHandler, medicineHandler)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := ":" + a.cfg.ServerPort
		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("listening", "addr", addr)
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}
