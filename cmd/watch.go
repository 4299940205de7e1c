package cmd

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func parseEpisodeArgs(args []string) (id int64, season, episode int32, err error) {
	id, err = strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid entity id %q: %w", args[0], err)
	}

	s, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid season %q: %w", args[1], err)
	}

	e, err := strconv.ParseInt(args[2], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid episode %q: %w", args[2], err)
	}

	return id, int32(s), int32(e), nil
}

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:        "watch",
	Short:      "mark an episode as watched",
	Long:       `mark an episode as watched`,
	Args:       cobra.ExactArgs(3),
	ArgAliases: []string{"entity id", "season", "episode"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, season, episode, err := parseEpisodeArgs(args)
		if err != nil {
			log.Fatal(err)
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
		if err := t.MarkEpisodeWatched(ctx, id, season, episode, 0); err != nil {
			log.Fatal("failed to mark episode watched", zap.Error(err))
		}
	},
}

// unwatchCmd represents the unwatch command
var unwatchCmd = &cobra.Command{
	Use:        "unwatch",
	Short:      "remove an episode from the watched ledger",
	Long:       `remove an episode from the watched ledger`,
	Args:       cobra.ExactArgs(3),
	ArgAliases: []string{"entity id", "season", "episode"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, season, episode, err := parseEpisodeArgs(args)
		if err != nil {
			log.Fatal(err)
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
		if err := t.UnwatchEpisode(ctx, id, season, episode); err != nil {
			log.Fatal("failed to unwatch episode", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(unwatchCmd)
}
