// Export and import commands round-trip the full snapshot as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the snapshot as JSON",
	Long: `Export writes all contacts and notes as a JSON document, to stdout or
to --file.

Example:
  satchel export --file backup.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
			out := os.Stdout
			if exportFile != "" {
				f, err := os.Create(exportFile)
				if err != nil {
					return &types.PersistenceError{Op: "create export file", Err: err}
				}
				defer f.Close()
				out = f
			}
			return sqlite.ExportJSON(out, book, notes)
		})
	},
}

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the snapshot from a JSON export",
	Long: `Import reads a document produced by export and replaces the current
snapshot with it. The existing contacts and notes are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		book, notes, err := sqlite.ImportJSON(f)
		if err != nil {
			return err
		}

		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.Save(book, notes); err != nil {
			return err
		}
		fmt.Printf("Imported %d contacts and %d notes.\n", book.Len(), notes.Len())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file (default: stdout)")

	importCmd.Flags().StringVar(&importFile, "file", "", "input file (required)")
	_ = importCmd.MarkFlagRequired("file")
}
