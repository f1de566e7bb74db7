package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-read the participant cache",
	Long: `Re-reads the external participant cache and rebuilds attendee data
for the loaded documents. Documents added to or removed from the sync
directory are not picked up; re-run the process for a full reload.`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	if refreshService == nil {
		return errors.New("refresh service not configured")
	}

	stats, err := refreshService.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	cmd.Printf("Documents:            %d\n", stats.TotalDocuments)
	cmd.Printf("With attendees:       %d\n", stats.DocumentsWithAttendees)
	cmd.Printf("Unique attendees:     %d\n", stats.UniqueAttendees)
	return nil
}
