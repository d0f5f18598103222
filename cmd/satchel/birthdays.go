// Birthdays command lists contacts with upcoming birthdays, with weekend
// congratulation dates moved to the following Monday.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var birthdaysDays int

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List upcoming birthdays",
	Long: `Birthdays lists every contact whose birthday falls within the next
--days days. Birthdays landing on a weekend are congratulated on the
following Monday.

Example:
  satchel birthdays
  satchel birthdays --days 30`,
	Args: cobra.NoArgs,
	RunE: runBirthdays,
}

// reminderView is the --json shape of one upcoming birthday.
type reminderView struct {
	Name           string `json:"name"`
	Birthday       string `json:"birthday"`
	Congratulation string `json:"congratulation"`
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	return readSnapshot(func(book *types.AddressBook, notes *types.NoteBook) error {
		reminders, err := book.UpcomingBirthdays(birthdaysDays, time.Now())
		if err != nil {
			return err
		}

		if flagJSON {
			views := make([]reminderView, len(reminders))
			for i, rem := range reminders {
				b, _ := rem.Record.Birthday()
				views[i] = reminderView{
					Name:           rem.Record.Name().String(),
					Birthday:       b.String(),
					Congratulation: rem.Congratulation.Format(types.BirthdayLayout),
				}
			}
			return printJSON(views)
		}

		if len(reminders) == 0 {
			fmt.Println("No upcoming birthdays.")
			return nil
		}
		fmt.Println("Upcoming birthdays:")
		for _, rem := range reminders {
			fmt.Printf("%s: %s\n", rem.Record.Name(), rem.Congratulation.Format(types.BirthdayLayout))
		}
		return nil
	})
}

func init() {
	birthdaysCmd.Flags().IntVar(&birthdaysDays, "days", types.DefaultBirthdayWindow, "days ahead to look")
}
