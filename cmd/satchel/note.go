// Note command group: create, delete, show, edit, list, and find notes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var (
	noteAddTitle   string
	noteAddContent string
	noteAddTags    []string
)

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Long: `Add creates a note with a unique title, optional content, and tags.

Example:
  satchel note add --title Shopping --content "milk, eggs" --tag groceries --tag weekly`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			note, err := types.NewNote(noteAddTitle, noteAddContent, noteAddTags...)
			if err != nil {
				return "", err
			}
			if err := notes.Add(note); err != nil {
				return "", err
			}
			return fmt.Sprintf("Note %q added.", note.Title()), nil
		})
	},
}

var noteDeleteTitle string

var noteDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			if err := notes.Delete(noteDeleteTitle); err != nil {
				return "", err
			}
			return fmt.Sprintf("Note %q deleted.", noteDeleteTitle), nil
		})
	},
}

var (
	noteEditTitle   string
	noteEditContent string
)

var noteEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace a note's content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSnapshot(func(book *types.AddressBook, notes *types.NoteBook) (string, error) {
			if err := notes.EditContent(noteEditTitle, noteEditContent); err != nil {
				return "", err
			}
			return fmt.Sprintf("Note %q updated.", noteEditTitle), nil
		})
	},
}

var noteShowTitle string

var noteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a single note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			note, err := notes.Find(noteShowTitle)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(newNoteView(note))
			}
			fmt.Println(note)
			return nil
		})
	},
}

var noteListSort string

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List prints all notes ordered by the --sort criterion: "title" for
alphabetical order, "tagCount" for most-tagged first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			sorted, err := notes.Sorted(noteListSort)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(newNoteViews(sorted))
			}
			if len(sorted) == 0 {
				fmt.Println("No notes.")
				return nil
			}
			for _, n := range sorted {
				fmt.Println(n)
			}
			return nil
		})
	},
}

var noteFindTag string

var noteFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find notes by tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			matches, err := notes.FindByTag(noteFindTag)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(newNoteViews(matches))
			}
			if len(matches) == 0 {
				fmt.Println("No notes match.")
				return nil
			}
			for _, n := range matches {
				fmt.Println(n)
			}
			return nil
		})
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddTitle, "title", "", "note title (required)")
	noteAddCmd.Flags().StringVar(&noteAddContent, "content", "", "note content")
	noteAddCmd.Flags().StringSliceVar(&noteAddTags, "tag", nil, "tag (repeatable)")
	_ = noteAddCmd.MarkFlagRequired("title")

	noteDeleteCmd.Flags().StringVar(&noteDeleteTitle, "title", "", "note title (required)")
	_ = noteDeleteCmd.MarkFlagRequired("title")

	noteEditCmd.Flags().StringVar(&noteEditTitle, "title", "", "note title (required)")
	noteEditCmd.Flags().StringVar(&noteEditContent, "content", "", "replacement content (required)")
	_ = noteEditCmd.MarkFlagRequired("title")
	_ = noteEditCmd.MarkFlagRequired("content")

	noteShowCmd.Flags().StringVar(&noteShowTitle, "title", "", "note title (required)")
	_ = noteShowCmd.MarkFlagRequired("title")

	noteListCmd.Flags().StringVar(&noteListSort, "sort", types.SortByTitle, `sort criterion: "title" or "tagCount"`)

	noteFindCmd.Flags().StringVar(&noteFindTag, "tag", "", "tag to match (required)")
	_ = noteFindCmd.MarkFlagRequired("tag")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteFindCmd)
}
