package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/parser"
	"github.com/balkashynov/logbook/internal/tracker"
)

var editCmd = &cobra.Command{
	Use:   "edit <item-id>",
	Short: "Edit a logged item",
	Long: `Edit a logged item. Only the fields passed as flags change.

Usage:
  logbook edit 3f2a --amount 120
  logbook edit 3f2a --at "21/01/2026 08:15" --notes "decaf"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		item, err := resolveItem(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var patch tracker.ItemPatch
		flags := cmd.Flags()
		if flags.Changed("amount") {
			amount, _ := flags.GetFloat64("amount")
			patch.Amount = &amount
		}
		if flags.Changed("unit") {
			unit, _ := flags.GetString("unit")
			patch.Unit = &unit
		}
		if flags.Changed("name") {
			name, _ := flags.GetString("name")
			patch.CustomName = &name
		}
		if flags.Changed("preset") {
			ref, _ := flags.GetString("preset")
			presetID := ""
			if ref != "" {
				preset, ok := findPreset(app.tracker, ref)
				if !ok {
					fmt.Printf("Error: no preset '%s'\n", ref)
					return
				}
				presetID = preset.ID
			}
			patch.PresetID = &presetID
		}
		if flags.Changed("notes") {
			notes, _ := flags.GetString("notes")
			patch.Notes = &notes
		}
		if flags.Changed("at") {
			raw, _ := flags.GetString("at")
			at, err := parser.ParseWhen(raw, time.Now().In(app.tracker.Location()))
			if err != nil {
				fmt.Printf("Error: invalid --at: %v\n", err)
				return
			}
			patch.Timestamp = &at
		}

		if err := app.tracker.Update(item.ID, patch); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		updated, _ := app.tracker.Get(item.ID)
		fmt.Printf("✏️  Updated %s: %s at %s\n",
			app.tracker.DisplayName(updated),
			formatAmount(updated.Amount, updated.Unit),
			updated.Timestamp.In(app.tracker.Location()).Format("02/01/2006 15:04"))
	},
}

func init() {
	editCmd.Flags().Float64P("amount", "a", 0, "New amount")
	editCmd.Flags().StringP("unit", "u", "", "New unit")
	editCmd.Flags().String("name", "", "New custom name")
	editCmd.Flags().StringP("preset", "p", "", "New preset id or name, empty to clear")
	editCmd.Flags().String("at", "", "New time: dd/mm/yyyy [HH:MM], HH:MM, yesterday, X hours ago")
	editCmd.Flags().StringP("notes", "n", "", "New notes")
}
