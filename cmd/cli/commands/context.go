package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/georgstage/vagtplan/internal/config"
	"github.com/georgstage/vagtplan/pkg/core/registry"
	"github.com/georgstage/vagtplan/pkg/core/services"
	"github.com/georgstage/vagtplan/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Store    db.Store
	Registry *registry.Registry
	Logger   *zap.Logger
	Ctx      context.Context
}

// Save syncs the registry collections back to the store. Commands call it
// after every mutation.
func (app *AppContext) Save() error {
	return services.SaveRegistry(app.Ctx, app.Store, app.Registry, app.Logger)
}
