// Address command group: set and clear a contact's postal address.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Manage a contact's postal address",
}

var (
	addressName  string
	addressValue string
)

var addressSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a contact's address, replacing any existing one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(addressName)
			if err != nil {
				return "", err
			}
			if err := record.SetAddress(addressValue); err != nil {
				return "", err
			}
			return fmt.Sprintf("Address set for %q.", record.Name()), nil
		})
	},
}

var addressClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a contact's address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(addressName)
			if err != nil {
				return "", err
			}
			record.ClearAddress()
			return fmt.Sprintf("Address cleared for %q.", record.Name()), nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{addressSetCmd, addressClearCmd} {
		c.Flags().StringVar(&addressName, "name", "", "contact name (required)")
		_ = c.MarkFlagRequired("name")
	}
	addressSetCmd.Flags().StringVar(&addressValue, "address", "", "postal address (required)")
	_ = addressSetCmd.MarkFlagRequired("address")

	addressCmd.AddCommand(addressSetCmd)
	addressCmd.AddCommand(addressClearCmd)
}
