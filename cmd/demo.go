package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/mitchellh/go-ps"
	"github.com/spf13/cobra"

	"github.com/joshyorko/menukit/common"
	"github.com/joshyorko/menukit/console"
	"github.com/joshyorko/menukit/menu"
	"github.com/joshyorko/menukit/pretty"
)

var demoCmd = &cobra.Command{
	Use:     "demo",
	Aliases: []string{"showcase"},
	Short:   "Run the interactive showcase menu.",
	Long: `Run a showcase menu tree built with the menu package: nested
submenus, parameterized actions, and a deliberately failing action that
demonstrates the report-and-continue contract.

Example:
  menukit demo`,
	Run: func(cmd *cobra.Command, args []string) {
		pretty.Guard(pretty.Interactive, 1, "The demo requires an interactive terminal (TTY).")
		showcase().Execute()
		common.Stdout("\n")
		pretty.Ok()
	},
}

func showcase() *menu.Menu {
	root := menu.New("menukit showcase", menu.Root())

	tools := menu.New("Tools")
	tools.AddAction("Run command", runCommand)
	tools.AddAction("Show environment", showEnvironment)

	system := menu.New("System")
	system.AddAction("List processes", listProcesses)
	system.AddAction("Working directory", workingDirectory)

	for _, sub := range []*menu.Menu{tools, system} {
		if err := root.AddSubMenu(sub); err != nil {
			pretty.Exit(2, "Broken showcase tree: %v", err)
		}
	}
	root.AddAction("Fail on purpose", func() error {
		return errors.New("this failure is expected, and the menu survives it")
	})
	return root
}

// runCommand asks for one command line, splits it shell-style, and runs it
// attached to the current terminal.
func runCommand() error {
	line, err := console.Default().ReadLine("Command >> ")
	if err != nil {
		return err
	}
	if line == "" {
		return nil
	}
	parts, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("cannot parse command %q: %w", line, err)
	}
	common.Debug("Running command %v.", parts)
	command := exec.Command(parts[0], parts[1:]...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	return command.Run()
}

func showEnvironment() error {
	variables := os.Environ()
	sort.Strings(variables)
	pretty.Header("Environment")
	for _, variable := range variables {
		common.Stdout("%s\n", variable)
	}
	return nil
}

func listProcesses() error {
	processes, err := ps.Processes()
	if err != nil {
		return err
	}
	pretty.Header("Processes")
	rule := pretty.TerminalWidth()
	if rule > 72 {
		rule = 72
	}
	common.Stdout("%s\n", strings.Repeat("-", rule))
	for _, process := range processes {
		common.Stdout("%7d  %s\n", process.Pid(), process.Executable())
	}
	common.Stdout("Total: %d processes.\n", len(processes))
	return nil
}

func workingDirectory() error {
	directory, err := os.Getwd()
	if err != nil {
		return err
	}
	common.Stdout("%s\n", directory)
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
