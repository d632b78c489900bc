package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
)

var rmCmd = &cobra.Command{
	Use:     "rm [item-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a logged item",
	Long:    "Delete a logged item. The id may be shortened to any unique prefix.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		item, err := resolveItem(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := app.tracker.Delete(item.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted %s: %s\n", app.tracker.DisplayName(item), formatAmount(item.Amount, item.Unit))
	},
}

// resolveItem finds an item by full id or unique id prefix
func resolveItem(ref string) (models.TrackedItem, error) {
	items := app.tracker.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	id, err := matchID(ref, ids)
	if err != nil {
		return models.TrackedItem{}, err
	}
	item, _ := app.tracker.Get(id)
	return item, nil
}
