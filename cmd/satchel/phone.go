// Phone command group: add, remove, and edit phone numbers on a contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Manage a contact's phone numbers",
}

var (
	phoneName   string
	phoneNumber string
	phoneOld    string
	phoneNew    string
)

var phoneAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a phone number to a contact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(phoneName)
			if err != nil {
				return "", err
			}
			if err := record.AddPhone(phoneNumber); err != nil {
				return "", err
			}
			return fmt.Sprintf("Phone added to %q.", record.Name()), nil
		})
	},
}

var phoneRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a phone number from a contact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(phoneName)
			if err != nil {
				return "", err
			}
			if err := record.RemovePhone(phoneNumber); err != nil {
				return "", err
			}
			return fmt.Sprintf("Phone removed from %q.", record.Name()), nil
		})
	},
}

var phoneEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace one of a contact's phone numbers",
	Long: `Edit replaces an existing phone number with a new one, keeping its
position in the list.

Example:
  satchel phone edit --name "John Smith" --old 1234567890 --new 098-765-4321`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(phoneName)
			if err != nil {
				return "", err
			}
			if err := record.EditPhone(phoneOld, phoneNew); err != nil {
				return "", err
			}
			return fmt.Sprintf("Phone updated for %q.", record.Name()), nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{phoneAddCmd, phoneRemoveCmd, phoneEditCmd} {
		c.Flags().StringVar(&phoneName, "name", "", "contact name (required)")
		_ = c.MarkFlagRequired("name")
	}

	phoneAddCmd.Flags().StringVar(&phoneNumber, "phone", "", "phone number (required)")
	_ = phoneAddCmd.MarkFlagRequired("phone")
	phoneRemoveCmd.Flags().StringVar(&phoneNumber, "phone", "", "phone number (required)")
	_ = phoneRemoveCmd.MarkFlagRequired("phone")

	phoneEditCmd.Flags().StringVar(&phoneOld, "old", "", "phone number to replace (required)")
	phoneEditCmd.Flags().StringVar(&phoneNew, "new", "", "replacement phone number (required)")
	_ = phoneEditCmd.MarkFlagRequired("old")
	_ = phoneEditCmd.MarkFlagRequired("new")

	phoneCmd.AddCommand(phoneAddCmd)
	phoneCmd.AddCommand(phoneRemoveCmd)
	phoneCmd.AddCommand(phoneEditCmd)
}
