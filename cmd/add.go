package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/catalog"
	"medialog/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var addMediaType string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:        "add",
	Short:      "start tracking the best catalog match for a title",
	Long:       `start tracking the best catalog match for a title`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"title"},
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

		var match *catalog.Match
		for i, m := range matches {
			if addMediaType != "" && string(m.MediaType) != addMediaType {
				continue
			}
			match = &matches[i]
			break
		}
		if match == nil {
			log.Fatal("no catalog match found", zap.String("title", args[0]))
		}

		entity, err := t.Track(ctx, *match)
		if err != nil {
			log.Fatal("failed to track entity", zap.Error(err))
		}

		fmt.Printf("tracking %s (%s) as %s\n", entity.Title, entity.MediaType, entity.State)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addMediaType, "type", "t", "", "restrict matches to a media type (show or movie)")

	rootCmd.AddCommand(addCmd)
}
