package commands

import (
	"fmt"
	"os"

	"playerfouls-backend/lib/scrapers/fbref"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(linksCmd)
}

var linksCmd = &cobra.Command{
	Use:   "links <league> <season>",
	Short: "Prints the match report links for a league season, e.g. links EPL 2024-2025.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opts := loadConfig().Scraper.options()
		client := fbref.NewClient(opts.Timeout)

		links, err := client.MatchLinks(cmd.Context(), args[0], args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		for _, l := range links {
			fmt.Println(l)
		}
	},
}
