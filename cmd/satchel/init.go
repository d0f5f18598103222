// Init command creates the satchel configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize satchel storage",
	Long:  "Create configuration and data directories, then initialize the snapshot store.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were created by the root
	// PersistentPreRunE; attaching once creates the data dir and schema.
	store, err := attachStore()
	if err != nil {
		return err
	}
	if err := store.Detach(); err != nil {
		return err
	}

	fmt.Println("Satchel initialized successfully")
	return nil
}
