// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/history"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyCmd.Flags().IntP("limit", "l", 0, "Show only the newest records, 0 for all")

	historyCmd.AddCommand(historyClearCmd)
}

// historyCmd lists finished downloads, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished downloads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println("No downloads recorded yet.")
			return
		}

		for _, r := range records {
			cmd.Printf("%s %s\n", style.New().Bold(true).Render(r.Title), style.Faint(r.Time.Format("2006-01-02 15:04")))
			cmd.Printf("  %s %s\n", style.Fg(color.Yellow)(r.Format), r.URL)
			cmd.Printf("  %s %s", icon.Get(icon.Folder), r.Directory)
			if r.Count > 1 {
				cmd.Printf(" %s", style.Faint(fmt.Sprintf("(downloaded %d times)", r.Count)))
			}
			cmd.Println()
		}
	},
}

// historyClearCmd forgets every finished download.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every finished download",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Clear())
		cmd.Printf("%s History cleared\n", icon.Get(icon.Success))
	},
}
