package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

var (
	searchAttendee   string
	searchFrom       string
	searchTo         string
	searchWorkspace  string
	searchFolder     string
	searchLimit      int
	searchTranscript bool
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [content query]",
	Short: "Search synced meeting documents",
	Long: `Searches the loaded corpus by intersecting the given filters and
ranking the survivors by relevance. The optional positional argument
matches against meeting titles and transcripts.

Date expressions accept absolute dates ("2024-03-05"), keywords
("today", "yesterday", "last week", "this month"), and counts
("last 14 days").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchAttendee, "attendee", "a", "", "filter by attendee email substring")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "start date expression")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "end date expression (inclusive)")
	searchCmd.Flags().StringVarP(&searchWorkspace, "workspace", "w", "", "filter by exact workspace id")
	searchCmd.Flags().StringVarP(&searchFolder, "folder", "f", "", "filter by folder name substring")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchTranscript, "transcript", false, "include the full transcript per match")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := domain.SearchQuery{
		AttendeeEmail:     searchAttendee,
		StartDate:         searchFrom,
		EndDate:           searchTo,
		WorkspaceID:       searchWorkspace,
		FolderName:        searchFolder,
		Limit:             searchLimit,
		IncludeTranscript: searchTranscript,
	}
	if len(args) > 0 {
		query.Content = args[0]
	}

	result, err := searchService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}
	return outputSearchTable(cmd, result)
}

func outputSearchJSON(cmd *cobra.Command, result *domain.SearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, result *domain.SearchResult) error {
	cmd.Printf("Query: %s\n", result.QuerySummary)

	if len(result.Matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Showing %d of %d matches\n\n", len(result.Matches), result.TotalMatches)
	for i := range result.Matches {
		m := &result.Matches[i]

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, m.Title, m.Score)
		if m.MeetingDate != nil {
			cmd.Printf("      Date: %s\n", m.MeetingDate.Format(time.RFC1123))
		}
		if m.WorkspaceName != "" {
			cmd.Printf("      Workspace: %s\n", m.WorkspaceName)
		}
		if len(m.Folders) > 0 {
			cmd.Printf("      Folders: %v\n", m.Folders)
		}
		if len(m.Attendees) > 0 {
			cmd.Printf("      Attendees: %s\n", formatAttendees(m.Attendees))
		}
		if m.Snippet != "" {
			cmd.Printf("      %s\n", m.Snippet)
		}
		cmd.Println()
	}

	return nil
}

func formatAttendees(attendees []domain.Attendee) string {
	out := ""
	for i, a := range attendees {
		if i > 0 {
			out += ", "
		}
		switch {
		case a.Name != "" && a.Email != "":
			out += fmt.Sprintf("%s <%s>", a.Name, a.Email)
		case a.Email != "":
			out += a.Email
		default:
			out += a.Name
		}
	}
	return out
}
