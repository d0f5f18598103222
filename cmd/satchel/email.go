// Email command group: set and clear a contact's email address.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Manage a contact's email address",
}

var (
	emailName  string
	emailValue string
)

var emailSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a contact's email, replacing any existing one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(emailName)
			if err != nil {
				return "", err
			}
			if err := record.SetEmail(emailValue); err != nil {
				return "", err
			}
			return fmt.Sprintf("Email set for %q.", record.Name()), nil
		})
	},
}

var emailClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a contact's email",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(emailName)
			if err != nil {
				return "", err
			}
			record.ClearEmail()
			return fmt.Sprintf("Email cleared for %q.", record.Name()), nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{emailSetCmd, emailClearCmd} {
		c.Flags().StringVar(&emailName, "name", "", "contact name (required)")
		_ = c.MarkFlagRequired("name")
	}
	emailSetCmd.Flags().StringVar(&emailValue, "email", "", "email address (required)")
	_ = emailSetCmd.MarkFlagRequired("email")

	emailCmd.AddCommand(emailSetCmd)
	emailCmd.AddCommand(emailClearCmd)
}
