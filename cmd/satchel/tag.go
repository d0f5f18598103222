// Tag command group: add and remove tags on a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage a note's tags",
}

var (
	tagTitle  string
	tagValues []string
	tagValue  string
)

var tagAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one or more tags to a note",
	Long: `Add attaches tags to a note. Tags are lower-cased and a leading "#" is
stripped; adding a tag the note already has is a no-op.

Example:
  satchel tag add --title Shopping --tag groceries --tag "#weekly"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			if err := notes.AddTags(tagTitle, tagValues...); err != nil {
				return "", err
			}
			return fmt.Sprintf("Tags added to %q.", tagTitle), nil
		})
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a tag from a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			if err := notes.RemoveTag(tagTitle, tagValue); err != nil {
				return "", err
			}
			return fmt.Sprintf("Tag removed from %q.", tagTitle), nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{tagAddCmd, tagRemoveCmd} {
		c.Flags().StringVar(&tagTitle, "title", "", "note title (required)")
		_ = c.MarkFlagRequired("title")
	}
	tagAddCmd.Flags().StringSliceVar(&tagValues, "tag", nil, "tag to add (repeatable, required)")
	_ = tagAddCmd.MarkFlagRequired("tag")
	tagRemoveCmd.Flags().StringVar(&tagValue, "tag", "", "tag to remove (required)")
	_ = tagRemoveCmd.MarkFlagRequired("tag")

	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
}
