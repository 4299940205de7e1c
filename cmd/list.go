package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/logger"
	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/table"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listStatus string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list tracked entities",
	Long:  `list tracked entities`,
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

		var where []sqlite.BoolExpression
		if listStatus != "" {
			if !storage.EntityState(listStatus).Valid() {
				log.Fatal("unknown status", zap.String("status", listStatus))
			}
			where = append(where, table.EntityTransition.ToState.EQ(sqlite.String(listStatus)))
		}

		entities, err := t.List(ctx, where...)
		if err != nil {
			log.Fatal("failed to list entities", zap.Error(err))
		}

		for _, e := range entities {
			added := "unknown"
			if e.Added != nil {
				added = humanize.Time(*e.Added)
			}
			fmt.Printf("%d\t%s\t%s\t%s\tadded %s\n", e.ID, e.MediaType, e.Title, e.State, added)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "only list entities in this status")

	rootCmd.AddCommand(listCmd)
}
