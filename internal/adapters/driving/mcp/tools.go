package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_meetings tool.
type SearchInput struct {
	AttendeeEmail     string `json:"attendee_email,omitempty" jsonschema:"filter by attendee email substring"`
	StartDate         string `json:"start_date,omitempty" jsonschema:"start date expression (ISO date, 'today', 'last week', 'last N days', ...)"`
	EndDate           string `json:"end_date,omitempty" jsonschema:"end date expression, inclusive of the whole day"`
	WorkspaceID       string `json:"workspace_id,omitempty" jsonschema:"filter by exact workspace id"`
	FolderName        string `json:"folder_name,omitempty" jsonschema:"filter by folder name substring"`
	ContentQuery      string `json:"content_query,omitempty" jsonschema:"match against meeting titles and transcripts"`
	Limit             int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	IncludeTranscript bool   `json:"include_transcript,omitempty" jsonschema:"attach the full transcript to each match"`
}

// SearchOutput is the output schema for the search_meetings tool.
type SearchOutput struct {
	Matches      []MatchOutput `json:"matches"`
	TotalMatches int           `json:"total_matches"`
	QuerySummary string        `json:"query_summary"`
}

// MatchOutput represents a single ranked match.
type MatchOutput struct {
	DocumentID    string           `json:"document_id"`
	Title         string           `json:"title"`
	MeetingDate   string           `json:"meeting_date,omitempty"`
	WorkspaceName string           `json:"workspace_name,omitempty"`
	Folders       []string         `json:"folders,omitempty"`
	Attendees     []AttendeeOutput `json:"attendees,omitempty"`
	Snippet       string           `json:"snippet,omitempty"`
	Score         float64          `json:"relevance_score"`
	Transcript    string           `json:"transcript,omitempty"`
}

// AttendeeOutput represents a meeting attendee.
type AttendeeOutput struct {
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Organizer bool   `json:"organizer,omitempty"`
}

// DocumentInput identifies one document for the by-id tools.
type DocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document id to look up"`
}

// DocumentOutput is the output schema for the get_document tool.
type DocumentOutput struct {
	DocumentID    string           `json:"document_id"`
	Title         string           `json:"title"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
	MeetingDate   string           `json:"meeting_date,omitempty"`
	WorkspaceID   string           `json:"workspace_id,omitempty"`
	WorkspaceName string           `json:"workspace_name,omitempty"`
	Folders       []string         `json:"folders,omitempty"`
	Attendees     []AttendeeOutput `json:"attendees,omitempty"`
	ConferenceURL string           `json:"conference_url,omitempty"`
	AudioSources  []string         `json:"audio_sources,omitempty"`
}

// TextOutput carries plain text content (notes, transcripts).
type TextOutput struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
}

// RefreshOutput is the output schema for the refresh_attendees tool.
type RefreshOutput struct {
	TotalDocuments         int `json:"totalDocuments"`
	DocumentsWithAttendees int `json:"documentsWithAttendees"`
	UniqueAttendees        int `json:"uniqueAttendees"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_meetings",
		Description: "Search synced meeting documents by attendee, date range, workspace, folder, and content",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Fetch one meeting document's record by id",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the rendered transcript of a meeting by document id",
	}, s.handleGetTranscript)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_notes",
		Description: "Fetch the rendered notes of a meeting by document id",
	}, s.handleGetNotes)

	if s.ports.Refresh != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "refresh_attendees",
			Description: "Re-read the participant cache and rebuild attendee data without a full reload",
		}, s.handleRefresh)
	}
}

// handleSearch handles the search_meetings tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := domain.SearchQuery{
		AttendeeEmail:     input.AttendeeEmail,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		WorkspaceID:       input.WorkspaceID,
		FolderName:        input.FolderName,
		Content:           input.ContentQuery,
		Limit:             input.Limit,
		IncludeTranscript: input.IncludeTranscript,
	}

	result, err := s.ports.Search.Search(ctx, query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Matches:      make([]MatchOutput, len(result.Matches)),
		TotalMatches: result.TotalMatches,
		QuerySummary: result.QuerySummary,
	}
	for i := range result.Matches {
		output.Matches[i] = toMatchOutput(&result.Matches[i])
	}

	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Document.Get(ctx, input.DocumentID)
	if err != nil {
		return notFoundResult(err, input.DocumentID), DocumentOutput{}, nil
	}

	output := DocumentOutput{
		DocumentID:    doc.ID,
		Title:         doc.Title,
		CreatedAt:     doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     doc.UpdatedAt.Format(time.RFC3339),
		WorkspaceID:   doc.WorkspaceID,
		WorkspaceName: doc.WorkspaceName,
		Folders:       doc.FolderNames(),
		Attendees:     toAttendeeOutputs(doc.Enrichment.Attendees),
		AudioSources:  doc.AudioSources,
	}
	if doc.MeetingDate != nil {
		output.MeetingDate = doc.MeetingDate.Format(time.RFC3339)
	}
	if doc.Enrichment.Conference != nil {
		output.ConferenceURL = doc.Enrichment.Conference.URL
	}

	return nil, output, nil
}

// handleGetTranscript handles the get_transcript tool invocation.
func (s *Server) handleGetTranscript(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, TextOutput, error) {
	text, err := s.ports.Document.Transcript(ctx, input.DocumentID)
	if err != nil {
		return notFoundResult(err, input.DocumentID), TextOutput{}, nil
	}
	return nil, TextOutput{DocumentID: input.DocumentID, Text: text}, nil
}

// handleGetNotes handles the get_notes tool invocation.
func (s *Server) handleGetNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, TextOutput, error) {
	text, err := s.ports.Document.Notes(ctx, input.DocumentID)
	if err != nil {
		return notFoundResult(err, input.DocumentID), TextOutput{}, nil
	}
	return nil, TextOutput{DocumentID: input.DocumentID, Text: text}, nil
}

// handleRefresh handles the refresh_attendees tool invocation.
func (s *Server) handleRefresh(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, RefreshOutput, error) {
	stats, err := s.ports.Refresh.Refresh(ctx)
	if err != nil {
		return nil, RefreshOutput{}, err
	}
	return nil, RefreshOutput{
		TotalDocuments:         stats.TotalDocuments,
		DocumentsWithAttendees: stats.DocumentsWithAttendees,
		UniqueAttendees:        stats.UniqueAttendees,
	}, nil
}

// notFoundResult maps a lookup miss to a structured tool error rather
// than a protocol failure.
func notFoundResult(err error, documentID string) *mcp.CallToolResult {
	message := "document " + documentID + ": " + err.Error()
	if errors.Is(err, domain.ErrNotFound) {
		message = "document " + documentID + " not found"
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}

func toMatchOutput(m *domain.SearchMatch) MatchOutput {
	out := MatchOutput{
		DocumentID:    m.DocumentID,
		Title:         m.Title,
		WorkspaceName: m.WorkspaceName,
		Folders:       m.Folders,
		Attendees:     toAttendeeOutputs(m.Attendees),
		Snippet:       m.Snippet,
		Score:         m.Score,
		Transcript:    m.Transcript,
	}
	if m.MeetingDate != nil {
		out.MeetingDate = m.MeetingDate.Format(time.RFC3339)
	}
	return out
}

func toAttendeeOutputs(attendees []domain.Attendee) []AttendeeOutput {
	if len(attendees) == 0 {
		return nil
	}
	out := make([]AttendeeOutput, len(attendees))
	for i, a := range attendees {
		out[i] = AttendeeOutput{Email: a.Email, Name: a.Name, Organizer: a.Organizer}
	}
	return out
}
