package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/logger"
	"medialog/pkg/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:        "status",
	Short:      "move an entity to a new status",
	Long:       fmt.Sprintf("move an entity to one of: %s", strings.Join(stateNames(), ", ")),
	Args:       cobra.ExactArgs(2),
	ArgAliases: []string{"entity id", "status"},
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
		if err := t.SetStatus(ctx, id, storage.EntityState(args[1])); err != nil {
			log.Fatal("failed to set status", zap.Error(err))
		}
	},
}

// favoriteCmd represents the favorite command
var favoriteCmd = &cobra.Command{
	Use:        "favorite",
	Short:      "toggle the favorite flag on an entity",
	Long:       `toggle the favorite flag on an entity`,
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
		entity, err := t.Get(ctx, id)
		if err != nil {
			log.Fatal("failed to get entity", zap.Error(err))
		}

		if err := t.SetFavorite(ctx, id, !entity.Favorite); err != nil {
			log.Fatal("failed to set favorite", zap.Error(err))
		}
	},
}

func stateNames() []string {
	names := make([]string, 0, len(storage.EntityStates))
	for _, s := range storage.EntityStates {
		names = append(names, string(s))
	}
	return names
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(favoriteCmd)
}
