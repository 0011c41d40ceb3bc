package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshyorko/menukit/common"
	"github.com/joshyorko/menukit/pretty"
)

var (
	silentFlag    bool
	debugFlag     bool
	traceFlag     bool
	colorlessFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "menukit",
	Short: "menukit is a numbered-choice menu toolkit for console applications.",
	Long: `menukit is a toolkit for building interactive numbered-choice menus
in console applications. Menus form a tree: composite menus hold ordered
children and action leaves invoke bound callbacks. Choice 0 goes back one
level, or exits at the root.

The library lives in the menu and console packages; this binary hosts a
showcase of it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		if colorlessFlag {
			pretty.Disabled = true
			pretty.Setup()
		}
	},
}

// Execute runs the command tree. Used as the entry point from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		common.Error("toplevel", err)
		common.WaitLogs()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "s", false, "Be less verbose. Conflicts with --debug and --trace.")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Turn on tracing output. Implies --debug.")
	rootCmd.PersistentFlags().BoolVar(&colorlessFlag, "colorless", false, "Do not use colors in the terminal.")
}
