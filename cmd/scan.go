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

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "scan tracked shows and complete the caught-up ones",
	Long:  `scan tracked shows and complete the caught-up ones`,
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
		promoted, err := t.ScanForCompleted(ctx, func(current, total int, title string) {
			fmt.Printf("[%d/%d] %s\n", current, total, title)
		})
		if err != nil {
			log.Fatal("scan failed", zap.Error(err))
		}

		fmt.Printf("completed %d shows\n", promoted)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
