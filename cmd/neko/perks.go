package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neko-runner/internal/games/neko"
)

var perksCmd = &cobra.Command{
	Use:   "perks",
	Short: "List every perk",
	Long:  `Shows the perk pool grouped by category, with each perk's rank cap.`,
	Args:  cobra.NoArgs,
	Run:   runPerks,
}

func runPerks(_ *cobra.Command, _ []string) {
	pool := neko.Pool()

	maxIDLen := 2 // "ID" header
	for _, p := range pool {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	for _, cat := range []neko.Category{neko.CategoryMobility, neko.CategoryDestruction, neko.CategoryVitality, neko.CategorySpecial} {
		fmt.Printf("%s\n", cat)
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Max", "Effect")
		for _, p := range pool {
			if p.Category != cat {
				continue
			}
			limit := "-"
			if p.MaxRank > 0 {
				limit = fmt.Sprintf("%d", p.MaxRank)
			}
			fmt.Printf("  %-*s  %-5s  %s: %s\n", maxIDLen, p.ID, limit, p.Name, p.Description)
		}
		fmt.Println()
	}
	fmt.Println("A perk with no max can be taken any number of times.")
}
