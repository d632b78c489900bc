package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:         "help",
	Short:       "Show comprehensive help for logbook",
	Long:        `Display detailed help for all logbook commands and flags.`,
	Annotations: map[string]string{noAppAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗      ██████╗  ██████╗ ██████╗  ██████╗  ██████╗ ██╗  ██╗
██║     ██╔═══██╗██╔════╝ ██╔══██╗██╔═══██╗██╔═══██╗██║ ██╔╝
██║     ██║   ██║██║  ███╗██████╔╝██║   ██║██║   ██║█████╔╝
██║     ██║   ██║██║   ██║██╔══██╗██║   ██║██║   ██║██╔═██╗
███████╗╚██████╔╝╚██████╔╝██████╔╝╚██████╔╝╚██████╔╝██║  ██╗
╚══════╝ ╚═════╝  ╚═════╝ ╚═════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═╝

logbook - daily item tracker + gym workout log

ITEMS:

  log <item>              Log an item with smart parsing
    -p, --preset          Preset id or name
    -a, --amount          Amount
    -u, --unit            Unit
    --at                  When (dd/mm/yyyy HH:MM, 18:30, yesterday, 2h ago)
    -n, --notes           Notes

    Smart syntax:
      150mg         Amount with unit
      @preset       Use a preset's name, amount and unit
      at:yesterday  Set the time

    Example:
      logbook log "double espresso 150mg @espresso at:08:15"

  ls                      List logged items, newest first
    -d, --day             Only one day
    -l, --limit           Show at most N items

  today                   Today's total against the daily limit
  edit <id>               Change an item (id prefix is enough)
  rm <id>                 Delete an item

  report                  Totals, average and peak day
    -p, --period          daily|weekly|monthly
    -e, --end             Last day of the report
    --json                JSON output

  preset ls|add|rm        Manage presets
  settings show|set       Daily limit, warning threshold, reminders, theme
  achievements ls|unlock  Achievements
  export [file]           Export items, settings and achievements
  import <file>           Replace them from an export

WORKOUTS:

  workout                 Open the dashboard
  workout log <ex> <kg> [time]
                          Log a set (opens quick-log without weight)
    --at                  When the set was done
    -n, --notes           Notes
    --no-ui               Never open the quick-log screen

    Example:
      logbook workout log A3 82.5 1:45

  workout stats [ex]      Last, best, sessions and trend per exercise
  workout history <ex>    Every set of one exercise
  workout sessions        One line per training day
  workout today           Sets logged today
  workout exercises       Roster with machine settings
  workout edit|rm <id>    Change or delete a set
  workout export|import   Back up or restore all sets

    Dashboard keys:
      ↑/↓           Navigate exercises
      enter         History chart of the selected exercise
      l             Quick-log the selected exercise
      esc/q         Back / quit

GLOBAL:

  --config                Config file (default ~/.logbook/config.toml)
  --data-dir              Data directory (default ~/.logbook)

  version                 Print version information
  help                    Show this help

`)
}
