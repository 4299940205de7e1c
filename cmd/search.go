package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:        "search",
	Short:      "search the catalog by title",
	Long:       `search the catalog by title`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"query"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		t, err := newTracker(cfg)
		if err != nil {
			log.Fatal("failed to create tracker", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)
		matches, err := t.Search(ctx, args[0])
		if err != nil {
			log.Fatal("search failed", zap.Error(err))
		}

		for _, m := range matches {
			fmt.Printf("%d\t%s\t%s\t%s\n", m.CatalogID, m.MediaType, m.Title, m.FirstDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
