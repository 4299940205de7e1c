package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"medialog/config"
	"medialog/pkg/catalog"
	"medialog/pkg/storage/sqlite"
	"medialog/pkg/tracker"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medialog",
	Short: "medialog cli",
	Long:  `medialog cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.maxRetries", 3)
	viper.SetDefault("tmdb.cacheTTL", time.Minute*10)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "medialog.sqlite")

	viper.SetDefault("tracker.scanConcurrency", 20)
	viper.SetDefault("tracker.scanInterval", time.Duration(0))
	viper.SetDefault("tracker.importRate", 4.0)
}

// newTracker builds the tracker and its dependencies from the loaded configuration
func newTracker(cfg config.Config) (tracker.Tracker, error) {
	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return tracker.Tracker{}, err
	}

	client := catalog.NewTMDB(catalog.Config{
		Scheme:     cfg.TMDB.Scheme,
		Host:       cfg.TMDB.Host,
		APIKey:     cfg.TMDB.APIKey,
		MaxRetries: uint(cfg.TMDB.MaxRetries),
		CacheTTL:   cfg.TMDB.CacheTTL,
	}, nil)

	return tracker.New(client, store, cfg.Tracker), nil
}
