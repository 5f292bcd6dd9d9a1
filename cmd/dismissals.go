package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/reducer"
	"github.com/pable/go-cricket-metrics/internal/report"
	"github.com/pable/go-cricket-metrics/internal/storage"
)

var dismissalsCmd = &cobra.Command{
	Use:   "dismissals <player>",
	Short: "List how and where a player was dismissed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDismissals,
}

func init() {
	addFilterFlags(dismissalsCmd)
}

func runDismissals(cmd *cobra.Command, args []string) error {
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}
	agg := reducer.Fold(res.Matches, "")

	var names []string
	for _, p := range agg.Players() {
		names = append(names, p.Name)
	}
	players := reducer.SelectPlayers(names, args[0])
	if len(players) == 0 {
		return fmt.Errorf("no player matching %q", args[0])
	}

	db, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()
	if err := db.InsertDismissals(agg.Dismissals()); err != nil {
		return fmt.Errorf("store dismissals: %w", err)
	}

	for _, name := range players {
		report.Heading(os.Stdout, "Dismissals: "+name)
		report.PrintDismissals(os.Stdout, agg.DismissalsOf(name))

		kinds, err := db.DismissalKinds(name)
		if err != nil {
			return fmt.Errorf("count dismissal kinds: %w", err)
		}
		for _, k := range kinds {
			fmt.Fprintf(os.Stdout, "  %-20s %d\n", k.Kind, k.Count)
		}
	}
	return nil
}
