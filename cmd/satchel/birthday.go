// Birthday command group: set, clear, and show a contact's birthday.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var birthdayCmd = &cobra.Command{
	Use:   "birthday",
	Short: "Manage a contact's birthday",
}

var (
	birthdayName  string
	birthdayValue string
)

var birthdaySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a contact's birthday, replacing any existing one",
	Long: `Set stores a birthday for a contact. The date uses DD.MM.YYYY and may
not lie in the future.

Example:
  satchel birthday set --name "John Smith" --date 15.06.1990`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(birthdayName)
			if err != nil {
				return "", err
			}
			if err := record.SetBirthday(birthdayValue); err != nil {
				return "", err
			}
			return fmt.Sprintf("Birthday set for %q.", record.Name()), nil
		})
	},
}

var birthdayClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a contact's birthday",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			record, err := book.Find(birthdayName)
			if err != nil {
				return "", err
			}
			record.ClearBirthday()
			return fmt.Sprintf("Birthday cleared for %q.", record.Name()), nil
		})
	},
}

var birthdayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a contact's birthday",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			record, err := book.Find(birthdayName)
			if err != nil {
				return err
			}
			b, ok := record.Birthday()
			if !ok {
				fmt.Printf("No birthday set for %q.\n", record.Name())
				return nil
			}
			fmt.Printf("%s's birthday: %s\n", record.Name(), b)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{birthdaySetCmd, birthdayClearCmd, birthdayShowCmd} {
		c.Flags().StringVar(&birthdayName, "name", "", "contact name (required)")
		_ = c.MarkFlagRequired("name")
	}
	birthdaySetCmd.Flags().StringVar(&birthdayValue, "date", "", "birthday in DD.MM.YYYY (required)")
	_ = birthdaySetCmd.MarkFlagRequired("date")

	birthdayCmd.AddCommand(birthdaySetCmd)
	birthdayCmd.AddCommand(birthdayClearCmd)
	birthdayCmd.AddCommand(birthdayShowCmd)
}
