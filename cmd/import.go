package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/logger"
	"medialog/pkg/tracker"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:        "import",
	Short:      "import an exported watch history file",
	Long:       `import an exported watch history file`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to export file"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		b, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal("failed to read export file", zap.Error(err))
		}

		records, err := tracker.ParseForeignRecords(b)
		if err != nil {
			log.Fatal("failed to parse export file", zap.Error(err))
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
		result, err := t.ImportHistory(ctx, records, func(current, total int, title string) {
			fmt.Printf("[%d/%d] %s\n", current, total, title)
		})
		if err != nil {
			log.Fatal("import failed", zap.Error(err))
		}

		fmt.Printf("imported %d shows and %d movies\n", result.Shows, result.Movies)
		for _, title := range result.Failed {
			fmt.Printf("failed to match: %s\n", title)
		}
		for _, item := range result.Pending {
			fmt.Printf("needs review: %s (best guess %s, catalog id %d)\n", item.Record.Title, item.Match.Title, item.Match.CatalogID)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
