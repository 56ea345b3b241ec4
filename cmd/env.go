// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"os"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/config"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")
	envCmd.Flags().BoolP("describe", "d", false, "Show the description of each variable")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVar is a supported environment variable with its help text.
type envVar struct {
	name        string
	description string
}

func envVars() []envVar {
	vars := lo.MapToSlice(config.Default, func(_ string, field config.Field) envVar {
		return envVar{name: field.Env(), description: field.Description}
	})
	vars = append(vars, envVar{where.EnvConfigPath, "Directory holding the configuration file and logs"})

	slices.SortFunc(vars, func(a, b envVar) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		}
		return 0
	})
	return vars
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			describe  = lo.Must(cmd.Flags().GetBool("describe"))
		)

		for _, env := range envVars() {
			value, present := os.LookupEnv(env.name)
			present = present && value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if describe {
				cmd.Println(style.Faint(env.description))
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env.name))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
