package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the matches in the data directory",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addFilterFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}
	report.PrintMatchList(os.Stdout, res.Summaries)
	fmt.Fprintf(os.Stdout, "\n(%d matches)\n", len(res.Summaries))
	return nil
}
