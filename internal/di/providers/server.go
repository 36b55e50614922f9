package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/cuppaapp/cuppa-server/internal/api"
	"github.com/cuppaapp/cuppa-server/internal/config"
	"github.com/cuppaapp/cuppa-server/internal/logger"
	"github.com/cuppaapp/cuppa-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	authService := do.MustInvoke[*service.AuthService](i)
	identityResolver := do.MustInvoke[*service.IdentityResolver](i)
	cafeService := do.MustInvoke[*service.CafeService](i)
	tagService := do.MustInvoke[*service.TagService](i)
	reviewService := do.MustInvoke[*service.ReviewService](i)

	services := &api.Services{
		Auth:     authService,
		Identity: identityResolver,
		Cafe:     cafeService,
		Tag:      tagService,
		Review:   reviewService,
	}

	handler := api.NewServer(storeHandle.Store, services, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
