package auth

import "go.uber.org/fx"

// NewAuthModule provides Config and *BcryptHasher.
func NewAuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(newConfig, NewBcryptHasher),
	)
}
