// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"fmt"

	"github.com/bilidl/bilidl/history"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/query"
	"github.com/bilidl/bilidl/util"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func deleteDir(location func() string) func() error {
	return func() error {
		return util.Delete(location())
	}
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"metadata cache", "cache", mo.Some("c"), deleteDir(where.Metadata)},
	{"download history", "history", mo.Some("s"), history.Clear},
	{"url suggestions", "queries", mo.Some("q"), query.Clear},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().Bool("all", false, "clear everything above")
}

// clearCmd manages the cleanup of cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached metadata, history and suggestions",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			anyCleared bool
			all        = lo.Must(cmd.Flags().GetBool("all"))
		)

		for _, target := range clearTargets {
			if !all && !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			if err != nil {
				log.Warnf("clear %s: %v", target.name, err)
				fmt.Printf("%s %s could not be cleared: %v\n", icon.Get(icon.Warn), util.Capitalize(target.name), err)
				continue
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
