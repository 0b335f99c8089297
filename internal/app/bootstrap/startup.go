// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/rohithbabu/foliohub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	allowed, err := auth.ParseAllowList(appCfg.AllowedLogins)
	if err != nil {
		return err
	}
	if len(allowed) == 0 {
		logger.Warn("no owners enrolled; all edit endpoints will reject sign-in")
	} else {
		logger.Info("owner allow list loaded", zap.Int("owners", len(allowed)))
	}
	return nil
}
