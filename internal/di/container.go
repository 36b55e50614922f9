// Package di provides dependency injection configuration for the Cuppa server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/config"
	"github.com/cuppaapp/cuppa-server/internal/di/providers"
	"github.com/cuppaapp/cuppa-server/internal/logger"
	"github.com/cuppaapp/cuppa-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenCodec)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideIdentityResolver)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideCafeService)
	do.Provide(injector, providers.ProvideReviewService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*auth.TokenCodec](injector)

	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.IdentityResolver](injector)
	_ = do.MustInvoke[*service.TagService](injector)
	_ = do.MustInvoke[*service.CafeService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
