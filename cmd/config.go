package cmd

import "github.com/praython/djenofdjango/internal/database"

type Config struct {
	Database Database `mapstructure:"database"`
	Settings Settings `mapstructure:"settings"`
}

type Settings struct {
	Limit uint `mapstructure:"limit"`
}

type Database struct {
	Type database.Type `mapstructure:"type"`
	URI  string        `mapstructure:"uri"`
}
