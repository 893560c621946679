package app

import (
	"gorm.io/gorm"

	"github.com/praython/djenofdjango/internal/database"
	pasteRepository "github.com/praython/djenofdjango/internal/repository/paste"
	pasteService "github.com/praython/djenofdjango/internal/service/paste"
)

// App wires the database, repository and service together. Pending
// migrations are applied on startup.
type App struct {
	Pastes pasteService.Service

	db *gorm.DB
}

type Options struct {
	DatabaseType database.Type
	DatabaseURI  string

	Limit uint
}

func New(opts Options) (*App, error) {
	db, err := database.Open(opts.DatabaseType, opts.DatabaseURI)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db, opts.DatabaseType); err != nil {
		return nil, err
	}

	pr := pasteRepository.New(db)
	ps := pasteService.New(pr, pasteService.Options{
		Limit: opts.Limit,
	})

	return &App{Pastes: ps, db: db}, nil
}

func (a *App) DB() *gorm.DB {
	return a.db
}

func (a *App) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
