package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/spriy4nshu/portfolio/internal/analytics"
)

var (
	statsJSON   bool
	statsTop    int
	statsRecent int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show visitor statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.Analytics.DBPath); err != nil {
			return fmt.Errorf("no analytics database at %s: %w", cfg.Analytics.DBPath, err)
		}

		store, err := analytics.Open(cfg.Analytics.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context(), statsTop, statsRecent)
		if err != nil {
			return err
		}

		if statsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		return printStats(cmd.OutOrStdout(), stats)
	},
}

func printStats(out io.Writer, s *analytics.Stats) error {
	r := lipgloss.NewRenderer(out)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366f1"))
	muted := r.NewStyle().Foreground(lipgloss.Color("#94a3b8"))

	fmt.Fprintln(out, title.Render("Visitors"))
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Total views\t%s\n", humanize.Comma(s.TotalViews))
	fmt.Fprintf(tw, "  Unique visitors\t%s\n", humanize.Comma(s.UniqueVisitors))
	fmt.Fprintf(tw, "  Views today\t%s\n", humanize.Comma(s.ViewsToday))
	fmt.Fprintf(tw, "  Views this week\t%s\n", humanize.Comma(s.ViewsThisWeek))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.TopPaths) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, title.Render("Top pages"))
		for _, p := range s.TopPaths {
			fmt.Fprintf(tw, "  %s\t%s\n", p.Path, humanize.Comma(p.Views))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(s.RecentVisits) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, title.Render("Recent visits"))
		for _, v := range s.RecentVisits {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", humanize.Time(v.Timestamp), v.Path, muted.Render(v.HashedIP))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print as JSON")
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "number of top pages to list")
	statsCmd.Flags().IntVar(&statsRecent, "recent", 10, "number of recent visits to list")
	rootCmd.AddCommand(statsCmd)
}
