package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged items",
	Long:    "List logged items, most recent first, optionally for a single day",
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now().In(app.tracker.Location())

		var items []models.TrackedItem
		if day, _ := cmd.Flags().GetString("day"); day != "" {
			when, err := parser.ParseWhen(day, now)
			if err != nil {
				fmt.Printf("Error: invalid --day: %v\n", err)
				return
			}
			items = app.tracker.ItemsForDay(when)
		} else {
			items = app.tracker.Items()
		}

		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(items) > limit {
			items = items[:limit]
		}

		if len(items) == 0 {
			fmt.Println("No items found. Use 'logbook log \"item 95mg\"' to log your first one.")
			return
		}

		printItems(items, now)
	},
}

func printItems(items []models.TrackedItem, now time.Time) {
	fmt.Printf("%-9s %-24s %-12s %-14s %s\n", "ID", "NAME", "AMOUNT", "WHEN", "NOTES")
	fmt.Println(strings.Repeat("-", 72))

	for _, item := range items {
		fmt.Printf("%-9s %-24s %-12s %-14s %s\n",
			shortID(item.ID),
			truncate(app.tracker.DisplayName(item), 24),
			formatAmount(item.Amount, item.Unit),
			formatWhen(item.Timestamp, now),
			truncate(item.Notes, 30))
	}
}

func init() {
	listCmd.Flags().StringP("day", "d", "", "Only items of this day: dd/mm/yyyy, today, yesterday, X days ago")
	listCmd.Flags().IntP("limit", "l", 0, "Show at most this many items")
}
