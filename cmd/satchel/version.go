// Version command for the satchel CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the satchel release version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the satchel version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("satchel", version)
	},
}
