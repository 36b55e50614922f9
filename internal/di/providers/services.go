package providers

import (
	"github.com/samber/do/v2"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/logger"
	"github.com/cuppaapp/cuppa-server/internal/service"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	codec := do.MustInvoke[*auth.TokenCodec](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, codec, log.Logger), nil
}

// ProvideIdentityResolver provides the request identity resolver.
func ProvideIdentityResolver(i do.Injector) (*service.IdentityResolver, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	codec := do.MustInvoke[*auth.TokenCodec](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewIdentityResolver(storeHandle.Store, codec, log.Logger), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(storeHandle.Store, log.Logger), nil
}

// ProvideCafeService provides the cafe service.
func ProvideCafeService(i do.Injector) (*service.CafeService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tagService := do.MustInvoke[*service.TagService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCafeService(storeHandle.Store, tagService, log.Logger), nil
}

// ProvideReviewService provides the review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReviewService(storeHandle.Store, log.Logger), nil
}
