package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"playerfouls-backend/lib/matchstore"
	"playerfouls-backend/lib/matchstore/db"
	"playerfouls-backend/lib/scrapers/fbref"
	"playerfouls-backend/lib/serviceutil"
	"playerfouls-backend/lib/sqliteutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var collectSave *bool

func init() {
	collectSave = collectCmd.Flags().Bool("save", false, "Write the collected record to the database.")
	rootCmd.AddCommand(collectCmd)
}

func fmtOptInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func fmtOptFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtOptBool(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}

func renderRecord(record *fbref.PlayerMatchRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRow(table.Row{"Player", record.PlayerName})
	t.AppendRow(table.Row{"Date", record.Date})
	t.AppendRow(table.Row{"Competition", record.Competition})
	t.AppendRow(table.Row{"Venue", string(record.Venue)})
	t.AppendRow(table.Row{"Opponent", record.Opponent})
	t.AppendRow(table.Row{"Score", fmt.Sprintf(
		"%s %s - %s %s",
		record.HomeTeam, fmtOptInt(record.HomeGoals),
		fmtOptInt(record.AwayGoals), record.AwayTeam,
	)})
	t.AppendRow(table.Row{"Starting", fmtOptBool(record.Starting)})
	t.AppendRow(table.Row{"Position", record.Position})
	t.AppendRow(table.Row{"Minutes", fmtOptInt(record.Minutes)})
	t.AppendRow(table.Row{"Fouls", fmtOptInt(record.Fouls)})
	t.AppendRow(table.Row{"Fouled", fmtOptInt(record.Fouled)})
	t.AppendRow(table.Row{"Yellow Cards", fmtOptInt(record.YellowCards)})
	t.AppendRow(table.Row{"Red Cards", fmtOptInt(record.RedCards)})
	t.AppendRow(table.Row{"Tackles", fmtOptInt(record.Tackles)})
	t.AppendRow(table.Row{"Interceptions", fmtOptInt(record.Interceptions)})
	t.AppendRow(table.Row{"Take-Ons Att", fmtOptInt(record.TakeOnsAttempted)})
	t.AppendRow(table.Row{"Take-Ons Won", fmtOptInt(record.TakeOnsSucceeded)})
	t.AppendRow(table.Row{"Team Fouls", fmtOptInt(record.TeamFouls)})
	t.AppendRow(table.Row{"Team Possession %", fmtOptFloat(record.TeamPossessionPct)})
	t.AppendRow(table.Row{"Referee", record.RefereeName})
	t.AppendRow(table.Row{"Attendance", fmtOptInt(record.Attendance)})

	t.SetStyle(table.StyleRounded)
	t.Render()
}

var collectCmd = &cobra.Command{
	Use:   "collect <match-url> <player-name> [--save]",
	Short: "Collects one player's statistics from a match report page.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		matchURL := args[0]
		playerName := args[1]

		cfg := loadConfig()
		opts := cfg.Scraper.options()
		client := fbref.NewClient(opts.Timeout)
		scraper := fbref.NewScraper(client, client, opts)

		t1 := time.Now()
		record := scraper.ScrapeWithRetry(cmd.Context(), matchURL, playerName)
		t2 := time.Now()

		if record == nil {
			fmt.Fprintln(os.Stderr, "could not collect a usable record, see logs above")
			os.Exit(1)
		}

		slog.Info("collection time", "seconds", t2.Sub(t1).Seconds())
		renderRecord(record)

		if !*collectSave {
			return
		}

		out, err := sqliteutil.OpenDB(db.Schema, cfg.database())
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		store := matchstore.NewStore(out)
		err = store.Save(cmd.Context(), record)
		if err != nil {
			serviceutil.Fatal("failed to save record", err)
		}
		slog.Info("saved record", "player", record.PlayerName, "match", record.MatchURL)
	},
}
