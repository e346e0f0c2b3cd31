package commands

import (
	"os"

	"playerfouls-backend/lib/matchstore"
	"playerfouls-backend/lib/matchstore/db"
	"playerfouls-backend/lib/serviceutil"
	"playerfouls-backend/lib/sqliteutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <player-name>",
	Short: "Prints the stored match records for a player.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		database, err := sqliteutil.OpenDB(db.Schema, cfg.database())
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		store := matchstore.NewStore(database)
		rows, err := store.Pull(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to query records", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Venue", "Minutes", "Fouls", "Fouled", "Referee"})

		for _, r := range rows {
			t.AppendRow(table.Row{
				r.Date.String,
				r.Venue.String,
				r.Minutes.Int64,
				r.Fouls.Int64,
				r.Fouled.Int64,
				r.RefereeName.String,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
