// Contact command group: create, delete, show, list, and search contacts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

var (
	contactAddName     string
	contactAddPhones   []string
	contactAddEmail    string
	contactAddAddress  string
	contactAddBirthday string
)

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new contact",
	Long: `Add creates a new contact with the given name and optional fields.

Example:
  satchel contact add --name "John Smith" --phone 123-456-7890
  satchel contact add --name "Jane Doe" --phone 5550001111 --email jane@mail.com --birthday 01.04.1992`,
	Args: cobra.NoArgs,
	RunE: runContactAdd,
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
		record, err := types.NewRecord(contactAddName)
		if err != nil {
			return "", err
		}
		for _, p := range contactAddPhones {
			if err := record.AddPhone(p); err != nil {
				return "", err
			}
		}
		if contactAddEmail != "" {
			if err := record.SetEmail(contactAddEmail); err != nil {
				return "", err
			}
		}
		if contactAddAddress != "" {
			if err := record.SetAddress(contactAddAddress); err != nil {
				return "", err
			}
		}
		if contactAddBirthday != "" {
			if err := record.SetBirthday(contactAddBirthday); err != nil {
				return "", err
			}
		}
		if err := book.Add(record); err != nil {
			return "", err
		}
		return fmt.Sprintf("Contact %q added.", record.Name()), nil
	})
}

var contactDeleteName string

var contactDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a contact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			if err := book.Delete(contactDeleteName); err != nil {
				return "", err
			}
			return fmt.Sprintf("Contact %q deleted.", contactDeleteName), nil
		})
	},
}

var contactShowName string

var contactShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a single contact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			record, err := book.Find(contactShowName)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(newContactView(record))
			}
			fmt.Println(record)
			return nil
		})
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts sorted by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			records := book.Records()
			if flagJSON {
				return printJSON(newContactViews(records))
			}
			if len(records) == 0 {
				fmt.Println("No contacts.")
				return nil
			}
			for _, r := range records {
				fmt.Println(r)
			}
			return nil
		})
	},
}

var contactSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts by name, phone, or email",
	Long: `Search matches the query case-insensitively against contact names and
emails, and digit-for-digit against phone numbers.

Example:
  satchel contact search john
  satchel contact search 1234`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			matches := book.Search(args[0])
			if flagJSON {
				return printJSON(newContactViews(matches))
			}
			if len(matches) == 0 {
				fmt.Println("No contacts match.")
				return nil
			}
			for _, r := range matches {
				fmt.Println(r)
			}
			return nil
		})
	},
}

func init() {
	contactAddCmd.Flags().StringVar(&contactAddName, "name", "", "contact name (required)")
	contactAddCmd.Flags().StringSliceVar(&contactAddPhones, "phone", nil, "phone number (repeatable)")
	contactAddCmd.Flags().StringVar(&contactAddEmail, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&contactAddAddress, "address", "", "postal address")
	contactAddCmd.Flags().StringVar(&contactAddBirthday, "birthday", "", "birthday in DD.MM.YYYY")
	_ = contactAddCmd.MarkFlagRequired("name")

	contactDeleteCmd.Flags().StringVar(&contactDeleteName, "name", "", "contact name (required)")
	_ = contactDeleteCmd.MarkFlagRequired("name")

	contactShowCmd.Flags().StringVar(&contactShowName, "name", "", "contact name (required)")
	_ = contactShowCmd.MarkFlagRequired("name")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactSearchCmd)
}
