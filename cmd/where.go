// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.Flags().BoolP("all", "a", false, "include cache locations")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where [name]",
	Short: "Print where bilidl keeps its files",
	Long:  "Print where bilidl keeps its files. With a name only that path is printed, which suits scripts.",
	Example: "  bilidl where\n" +
		"  cd \"$(bilidl where downloads)\"",
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return lo.Map(where.Locations(), func(l where.Location, _ int) string {
			return l.Name
		}), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			l, ok := where.Lookup(args[0])
			if !ok {
				handleErr(fmt.Errorf("unknown location %q", args[0]))
			}
			cmd.Println(l.Path())
			return
		}

		all := lo.Must(cmd.Flags().GetBool("all"))
		shown := lo.Filter(where.Locations(), func(l where.Location, _ int) bool {
			return all || l.Listed
		})

		name := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range shown {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(name(l.Name))
			cmd.Println(l.Path())
		}
	},
}
