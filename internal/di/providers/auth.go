package providers

import (
	"github.com/samber/do/v2"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/config"
	"github.com/cuppaapp/cuppa-server/internal/logger"
)

// ProvideTokenCodec provides the JWT token codec.
func ProvideTokenCodec(i do.Injector) (*auth.TokenCodec, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	codec, err := auth.NewTokenCodec(string(cfg.Auth.TokenSecret), cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	log.Info("Token codec initialized", "token_ttl", cfg.Auth.TokenTTL)

	return codec, nil
}
