package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"ach"},
	Short:   "List or unlock achievements",
}

var achievementsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List achievements",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireFeature(app.cfg.Tracker.EnableAchievements, "achievements") {
			return
		}
		achievements := app.tracker.Achievements()
		if len(achievements) == 0 {
			fmt.Println("No achievements defined. Add [[tracker.achievements]] to your config file.")
			return
		}

		for _, a := range achievements {
			mark := "🔒"
			if a.Unlocked {
				mark = "🏆"
			}
			title := a.Title
			if a.Icon != "" {
				title = a.Icon + " " + title
			}
			fmt.Printf("%s %s (%s)\n", mark, title, a.ID)
			if a.Description != "" {
				fmt.Printf("   %s\n", a.Description)
			}
			fmt.Printf("   %s target: %s\n", a.Criteria.Type, humanize.FtoaWithDigits(a.Criteria.Target, 2))
			if a.UnlockedAt != nil {
				fmt.Printf("   unlocked %s\n", humanize.Time(*a.UnlockedAt))
			}
		}
	},
}

var achievementsUnlockCmd = &cobra.Command{
	Use:   "unlock <achievement-id>",
	Short: "Mark an achievement as unlocked",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireFeature(app.cfg.Tracker.EnableAchievements, "achievements") {
			return
		}
		id := strings.TrimSpace(args[0])
		for _, a := range app.tracker.Achievements() {
			if a.ID != id {
				continue
			}
			if a.Unlocked {
				fmt.Printf("Already unlocked: %s\n", a.Title)
				return
			}
			if err := app.tracker.UnlockAchievement(id); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("🏆 Unlocked: %s\n", a.Title)
			return
		}
		fmt.Printf("Error: no achievement '%s'\n", id)
	},
}

func init() {
	achievementsCmd.AddCommand(achievementsListCmd)
	achievementsCmd.AddCommand(achievementsUnlockCmd)
}
