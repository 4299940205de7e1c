package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// progressCmd represents the progress command
var progressCmd = &cobra.Command{
	Use:        "progress",
	Short:      "show watch progress for an entity",
	Long:       `show watch progress for an entity`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"entity id"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal("invalid entity id", zap.String("id", args[0]))
		}

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		t, err := newTracker(cfg)
		if err != nil {
			log.Fatal("failed to create tracker", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)
		p, err := t.GetProgress(ctx, id, time.Now())
		if err != nil {
			log.Fatal("failed to get progress", zap.Error(err))
		}

		fmt.Printf("state: %s\n", p.State)
		fmt.Printf("watched: %d of %d aired (%d remaining)\n", p.WatchedCount, p.TotalAired, p.Remaining)
		if p.CaughtUp {
			fmt.Println("caught up")
		}
		if p.NextEpisode != nil {
			fmt.Printf("next episode: s%02de%02d\n", p.NextEpisode.Season, p.NextEpisode.Episode)
		}
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
