package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Inspect a single document",
}

var docGetCmd = &cobra.Command{
	Use:   "get <document-id>",
	Short: "Show a document's record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocGet,
}

var docMetaCmd = &cobra.Command{
	Use:   "meta <document-id>",
	Short: "Print a document's raw metadata record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocMeta,
}

var docTranscriptCmd = &cobra.Command{
	Use:   "transcript <document-id>",
	Short: "Print a document's rendered transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocTranscript,
}

var docNotesCmd = &cobra.Command{
	Use:   "notes <document-id>",
	Short: "Print a document's rendered notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocNotes,
}

func init() {
	docCmd.AddCommand(docGetCmd, docMetaCmd, docTranscriptCmd, docNotesCmd)
	rootCmd.AddCommand(docCmd)
}

func runDocGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("document %s: %w", args[0], err)
	}

	cmd.Printf("ID:        %s\n", doc.ID)
	cmd.Printf("Title:     %s\n", doc.Title)
	cmd.Printf("Created:   %s\n", doc.CreatedAt.Format(time.RFC3339))
	cmd.Printf("Updated:   %s\n", doc.UpdatedAt.Format(time.RFC3339))
	if doc.MeetingDate != nil {
		cmd.Printf("Meeting:   %s\n", doc.MeetingDate.Format(time.RFC3339))
	}
	if doc.WorkspaceName != "" {
		cmd.Printf("Workspace: %s (%s)\n", doc.WorkspaceName, doc.WorkspaceID)
	}
	if len(doc.Folders) > 0 {
		cmd.Printf("Folders:   %v\n", doc.FolderNames())
	}
	if len(doc.AudioSources) > 0 {
		cmd.Printf("Audio:     %v\n", doc.AudioSources)
	}
	if doc.HasAttendees() {
		cmd.Printf("Attendees: %s\n", formatAttendees(doc.Enrichment.Attendees))
	}
	if doc.Enrichment.Conference != nil {
		cmd.Printf("Join:      %s (%s)\n", doc.Enrichment.Conference.URL, doc.Enrichment.Conference.Platform)
	}
	return nil
}

func runDocMeta(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	raw, err := documentService.Metadata(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("metadata for %s: %w", args[0], err)
	}
	cmd.Println(string(raw))
	return nil
}

func runDocTranscript(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	text, err := documentService.Transcript(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("transcript for %s: %w", args[0], err)
	}
	cmd.Println(text)
	return nil
}

func runDocNotes(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	text, err := documentService.Notes(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("notes for %s: %w", args[0], err)
	}
	cmd.Println(text)
	return nil
}
