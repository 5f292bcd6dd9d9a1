package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/loader"
)

var (
	filterTournament string
	filterYears      []int
	filterTeam1      string
	filterTeam2      string
	filterVenue      string
	filterDate       string
	filterMatches    []string
)

// addFilterFlags registers the match selection flags on c.
func addFilterFlags(c *cobra.Command) {
	c.Flags().StringVar(&filterTournament, "tournament", "", "only matches of this tournament")
	c.Flags().IntSliceVar(&filterYears, "year", nil, "only matches in these years (repeatable)")
	c.Flags().StringVar(&filterTeam1, "team1", "", "only matches involving this team")
	c.Flags().StringVar(&filterTeam2, "team2", "", "only matches also involving this team")
	c.Flags().StringVar(&filterVenue, "venue", "", "only matches at this venue")
	c.Flags().StringVar(&filterDate, "date", "", "only matches starting on this date (YYYY-MM-DD)")
	c.Flags().StringSliceVar(&filterMatches, "match-name", nil, "only matches with these display names (repeatable)")
}

func matchFilter() loader.Filter {
	names := make([]string, 0, len(filterMatches))
	for _, n := range filterMatches {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return loader.Filter{
		Tournament: filterTournament,
		Years:      filterYears,
		Team1:      filterTeam1,
		Team2:      filterTeam2,
		Venue:      filterVenue,
		Date:       filterDate,
		Names:      names,
	}
}
