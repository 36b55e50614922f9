package api

import (
	"github.com/cuppaapp/cuppa-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth     *service.AuthService
	Identity *service.IdentityResolver
	Cafe     *service.CafeService
	Tag      *service.TagService
	Review   *service.ReviewService
}
