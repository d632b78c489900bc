package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage presets",
	Long:  "Presets are reusable templates with a name, a default amount and a unit.",
}

var presetListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List presets",
	Run: func(cmd *cobra.Command, args []string) {
		presets := app.tracker.Presets()
		if len(presets) == 0 {
			fmt.Println("No presets yet. Use 'logbook preset add \"Espresso\" 63mg' to create one.")
			return
		}

		fmt.Printf("%-14s %-24s %-12s %s\n", "ID", "NAME", "DEFAULT", "CATEGORY")
		fmt.Println(strings.Repeat("-", 64))
		for _, p := range presets {
			name := p.Name
			if p.Icon != "" {
				name = p.Icon + " " + name
			}
			fmt.Printf("%-14s %-24s %-12s %s\n",
				truncate(p.ID, 14),
				truncate(name, 24),
				formatAmount(p.DefaultAmount, p.Unit),
				p.Category)
		}
	},
}

var presetAddCmd = &cobra.Command{
	Use:   "add <name> <default-amount>",
	Short: "Create a preset",
	Long: `Create a preset.

Usage:
  logbook preset add "Espresso" 63mg --category coffee --icon ☕`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		amount, unit, err := parser.ParseAmount(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if unit == "" {
			unit = app.cfg.Tracker.DefaultUnit
		}

		preset := models.Preset{
			Name:          strings.TrimSpace(args[0]),
			DefaultAmount: amount,
			Unit:          unit,
		}
		preset.Category, _ = cmd.Flags().GetString("category")
		preset.Icon, _ = cmd.Flags().GetString("icon")
		preset.Color, _ = cmd.Flags().GetString("color")

		created, err := app.tracker.AddPreset(preset)
		if err != nil {
			fmt.Printf("Error creating preset: %v\n", err)
			return
		}

		fmt.Printf("✅ Created preset %s: %s\n", created.Name, formatAmount(created.DefaultAmount, created.Unit))
		fmt.Printf("  ID: %s\n", created.ID)
	},
}

var presetRmCmd = &cobra.Command{
	Use:   "rm <preset>",
	Short: "Delete a preset",
	Long:  "Delete a preset by id or name. Items logged with it are kept and show as \"Unknown\".",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		preset, ok := findPreset(app.tracker, args[0])
		if !ok {
			fmt.Printf("Error: no preset '%s'\n", args[0])
			return
		}

		if err := app.tracker.DeletePreset(preset.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted preset %s\n", preset.Name)
	},
}

func init() {
	presetAddCmd.Flags().StringP("category", "c", "", "Category")
	presetAddCmd.Flags().String("icon", "", "Icon, e.g. an emoji")
	presetAddCmd.Flags().String("color", "", "Color")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetAddCmd)
	presetCmd.AddCommand(presetRmCmd)
}
