// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stratafriends/internal/app/system/seeding"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are
// complete, but before the HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having
// live database connections and fully loaded configuration. Returning a
// non-nil error aborts startup and prevents the server from starting.
//
// The context will be cancelled if the process is asked to shut down
// while Startup is running; honor it in any long-running work.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := seeding.EnsureDemoUser(ctx, deps.MongoDatabase, seeding.SeedUser{
		Username: appCfg.SeedUsername,
		Email:    appCfg.SeedEmail,
		Name:     appCfg.SeedName,
		Password: appCfg.SeedPassword,
	}, logger); err != nil {
		logger.Error("failed to seed demo user", zap.Error(err))
		return err
	}

	return nil
}
