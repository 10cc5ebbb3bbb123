package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdat2209/Read-Track-Backend/cli/config"
)

var rootCmd = &cobra.Command{
	Use:   "readtrack",
	Short: "ReadTrack command line client",
	Long:  `Manage books and reading logs on a running ReadTrack server.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize CLI configuration",
	Long:  `Create ~/.readtrack/config.yaml with default server settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			printError("Failed to initialize configuration")
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("Configuration ready at %s", path))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(systemCmd)
}
