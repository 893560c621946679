package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/praython/djenofdjango/internal/app"
	"github.com/praython/djenofdjango/internal/database"
)

var (
	config     Config
	configFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (.yaml)")

	rootCmd.PersistentFlags().StringVar((*string)(&config.Database.Type), "type", string(database.SQLite), "Database type (one of postgresql sqlite)")
	rootCmd.PersistentFlags().StringVar(&config.Database.URI, "uri", "pastes.db", "Database URI (or file for SQLite)")

	rootCmd.PersistentFlags().UintVar(&config.Settings.Limit, "limit", 0, "Maximum size of paste text in bytes (0 for unlimited)")

	cobra.OnInitialize(func() {
		_ = godotenv.Load()

		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")

			viper.AddConfigPath(".")
			viper.AddConfigPath("~/.config/djenofdjango")
			viper.AddConfigPath("/etc/djenofdjango")
		}

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				panic(err)
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			panic(err)
		}
	})
}

var rootCmd = &cobra.Command{
	Use:   "djenofdjango",
	Short: "Paste storage with versioned schema migrations",
}

func openApp() (*app.App, error) {
	return app.New(app.Options{
		DatabaseType: config.Database.Type,
		DatabaseURI:  config.Database.URI,
		Limit:        config.Settings.Limit,
	})
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	_ = sqlDB.Close()
}

func Execute() error {
	return rootCmd.Execute()
}
