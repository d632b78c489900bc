package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
	"github.com/balkashynov/logbook/internal/tracker"
)

var logCmd = &cobra.Command{
	Use:   "log [item]",
	Short: "Log an item",
	Long: `Log an item against today's total.

Modes:
  Preset: logbook log --preset espresso
  Quick: logbook log "cola" --amount 34 --unit mg
  Smart parsing: logbook log "double espresso 150mg @espresso at:yesterday"

Smart parsing syntax:
  150mg       - Amount with optional unit (first number in the line)
  @preset     - Preset id or name
  at:when     - When it happened (dd/mm/yyyy, HH:MM, today, yesterday, 3d, 2h)

Flags always win over parsed values. Without an amount the preset's
default amount is used.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now().In(app.tracker.Location())
		parsed := parser.ParseLogLine(strings.Join(args, " "), now)
		if len(parsed.Errors) > 0 {
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		item, err := buildItem(cmd, parsed, now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		added, err := app.tracker.Add(item)
		if err != nil {
			fmt.Printf("Error saving item: %v\n", err)
			return
		}

		fmt.Printf("✅ Logged %s: %s\n", app.tracker.DisplayName(added), formatAmount(added.Amount, added.Unit))
		fmt.Printf("  ID: %s\n", shortID(added.ID))
		printLimitLine(app.tracker.LimitStatus(added.Timestamp))
	},
}

// buildItem merges the parsed line, the flags and the preset defaults
func buildItem(cmd *cobra.Command, parsed parser.ParsedLog, now time.Time) (models.TrackedItem, error) {
	item := models.TrackedItem{
		CustomName: parsed.Name,
		Amount:     parsed.Amount,
		Unit:       parsed.Unit,
		Timestamp:  now,
	}
	hasAmount := parsed.HasAmount
	if parsed.When != nil {
		item.Timestamp = *parsed.When
	}

	presetRef := parsed.Preset
	if flagPreset, _ := cmd.Flags().GetString("preset"); flagPreset != "" {
		presetRef = flagPreset
	}
	if cmd.Flags().Changed("amount") {
		item.Amount, _ = cmd.Flags().GetFloat64("amount")
		hasAmount = true
	}
	if flagUnit, _ := cmd.Flags().GetString("unit"); flagUnit != "" {
		item.Unit = flagUnit
	}
	if flagAt, _ := cmd.Flags().GetString("at"); flagAt != "" {
		at, err := parser.ParseWhen(flagAt, now)
		if err != nil {
			return item, fmt.Errorf("invalid --at: %w", err)
		}
		item.Timestamp = at
	}
	item.Notes, _ = cmd.Flags().GetString("notes")

	if presetRef != "" {
		preset, ok := findPreset(app.tracker, presetRef)
		if !ok {
			return item, fmt.Errorf("no preset '%s'. See 'logbook preset ls'", presetRef)
		}
		item.PresetID = preset.ID
		if !hasAmount {
			item.Amount = preset.DefaultAmount
			hasAmount = true
		}
		if item.Unit == "" {
			item.Unit = preset.Unit
		}
		// the preset names the item unless the line says otherwise
		if parsed.Name == "" {
			item.CustomName = ""
		}
	}

	if !hasAmount {
		return item, fmt.Errorf("no amount given. Add one like '95mg' or use --amount")
	}
	if item.PresetID == "" && item.CustomName == "" {
		return item, fmt.Errorf("name the item or pick a preset with @preset")
	}
	if item.Unit == "" {
		item.Unit = app.cfg.Tracker.DefaultUnit
	}
	return item, nil
}

// findPreset matches a preset by id or, case-insensitively, by name
func findPreset(store *tracker.Store, ref string) (models.Preset, bool) {
	if p, ok := store.Preset(ref); ok {
		return p, true
	}
	for _, p := range store.Presets() {
		if strings.EqualFold(p.Name, ref) || strings.EqualFold(p.ID, ref) {
			return p, true
		}
	}
	return models.Preset{}, false
}

func printLimitLine(status models.LimitStatus) {
	if status.Limit == nil {
		return
	}
	limit := status.Limit
	switch {
	case status.OverLimit:
		fmt.Printf("🚨 Over daily limit: %s / %s (%.0f%%)\n",
			formatAmount(status.Current, limit.Unit), formatAmount(limit.MaxAmount, limit.Unit), status.Percentage)
	case status.NearLimit:
		fmt.Printf("⚠️  Approaching daily limit: %s / %s (%.0f%%)\n",
			formatAmount(status.Current, limit.Unit), formatAmount(limit.MaxAmount, limit.Unit), status.Percentage)
	default:
		fmt.Printf("  Today: %s / %s, %s remaining\n",
			formatAmount(status.Current, limit.Unit), formatAmount(limit.MaxAmount, limit.Unit), formatAmount(status.Remaining, limit.Unit))
	}
}

func init() {
	logCmd.Flags().StringP("preset", "p", "", "Preset id or name")
	logCmd.Flags().Float64P("amount", "a", 0, "Amount")
	logCmd.Flags().StringP("unit", "u", "", "Unit, e.g. mg")
	logCmd.Flags().StringP("at", "", "", "When: dd/mm/yyyy [HH:MM], HH:MM, today, yesterday, X days ago, X hours ago")
	logCmd.Flags().StringP("notes", "n", "", "Additional notes")
}
