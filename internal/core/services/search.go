package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/index"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driving"
	"github.com/helicon-labs/minuta-cli/internal/daterange"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Scoring weights. A content query gates inclusion: a candidate whose
// title and transcript both contribute nothing is dropped even when it
// survived the set intersections.
const (
	titleMatchScore      = 10.0
	transcriptMatchScore = 5.0
	recencyMaxScore      = 5.0
	recencyDecayDays     = 7.0
	folderScore          = 0.5
	attendeeScore        = 1.0

	snippetLength    = 200
	transcriptFanout = 8
)

// SearchService resolves structured queries by intersecting per-dimension
// filters over the index and scoring the survivors.
type SearchService struct {
	catalog  driven.Catalog
	content  driven.ContentStore
	resolver *daterange.Resolver
	now      func() time.Time
}

// NewSearchService creates a new search service.
func NewSearchService(catalog driven.Catalog, content driven.ContentStore, resolver *daterange.Resolver) *SearchService {
	return &SearchService{
		catalog:  catalog,
		content:  content,
		resolver: resolver,
		now:      time.Now,
	}
}

// scoredDoc holds a candidate between scoring and result assembly.
type scoredDoc struct {
	doc        *domain.Document
	score      float64
	transcript string
}

// Search applies the query's filters as successive set intersections,
// scores the surviving candidates, and returns the ranked, bounded
// result.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	logger.Section("Search Execution")

	if s.catalog == nil {
		return nil, errors.New("catalog unavailable")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	candidates := s.catalog.Universe()
	logger.Debug("Universe: %d documents", len(candidates))

	var summary []string

	if query.AttendeeEmail != "" {
		candidates = candidates.Intersect(s.catalog.AttendeeMatches(query.AttendeeEmail))
		summary = append(summary, fmt.Sprintf("attendee contains %q", strings.ToLower(query.AttendeeEmail)))
		logger.Debug("After attendee filter: %d", len(candidates))
	}

	if query.StartDate != "" || query.EndDate != "" {
		rng := s.resolver.ResolveRange(query.StartDate, query.EndDate)
		if !rng.IsOpen() {
			candidates = s.filterByDate(ctx, candidates, rng)
			summary = append(summary, describeRange(rng))
			logger.Debug("After date filter: %d", len(candidates))
		}
	}

	if query.WorkspaceID != "" {
		candidates = candidates.Intersect(s.catalog.Workspace(query.WorkspaceID))
		summary = append(summary, fmt.Sprintf("workspace %q", query.WorkspaceID))
		logger.Debug("After workspace filter: %d", len(candidates))
	}

	if query.FolderName != "" {
		candidates = candidates.Intersect(s.catalog.FolderMatches(query.FolderName))
		summary = append(summary, fmt.Sprintf("folder contains %q", strings.ToLower(query.FolderName)))
		logger.Debug("After folder filter: %d", len(candidates))
	}

	// The content filter does not reduce the candidate set here. Title
	// matches are recorded now; transcript matches are resolved during
	// scoring, and candidates with no content contribution at all are
	// dropped afterwards.
	content := strings.ToLower(strings.TrimSpace(query.Content))
	var titleMatched index.Set
	if content != "" {
		titleMatched = s.catalog.TitleTokenMatches(content)
		summary = append(summary, fmt.Sprintf("content contains %q", content))
		logger.Debug("Title token matches: %d", len(titleMatched))
	}

	scored := s.scoreCandidates(ctx, candidates, content, titleMatched)
	total := len(scored)
	logger.Info("Candidates after scoring: %d", total)

	// Rank by score descending. Ties break on document id so results are
	// reproducible regardless of load order.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].doc.ID < scored[j].doc.ID
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	result := &domain.SearchResult{
		Matches:      make([]domain.SearchMatch, 0, len(scored)),
		TotalMatches: total,
		QuerySummary: describeSummary(summary),
	}
	for _, sc := range scored {
		result.Matches = append(result.Matches, s.assembleMatch(ctx, sc, query.IncludeTranscript, content != ""))
	}

	return result, nil
}

// filterByDate scans candidate metadata directly instead of using the
// day index: the index is keyed by exact calendar day and cannot answer
// arbitrary ranges without an ordering structure on top.
func (s *SearchService) filterByDate(ctx context.Context, candidates index.Set, rng daterange.Range) index.Set {
	out := make(index.Set)
	for id := range candidates {
		doc, err := s.catalog.Document(ctx, id)
		if err != nil {
			continue
		}
		if rng.Contains(doc.EffectiveDate()) {
			out[id] = struct{}{}
		}
	}
	return out
}

// scoreCandidates computes relevance for every candidate and applies the
// post-hoc content gate.
func (s *SearchService) scoreCandidates(ctx context.Context, candidates index.Set, content string, titleMatched index.Set) []scoredDoc {
	ids := candidates.IDs()
	docs := make([]*domain.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.catalog.Document(ctx, id)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	var transcripts map[string]string
	if content != "" {
		transcripts = s.loadTranscripts(ctx, docs)
	}

	now := s.now().UTC()
	scored := make([]scoredDoc, 0, len(docs))
	for _, doc := range docs {
		sc := scoredDoc{doc: doc, transcript: transcripts[doc.ID]}

		contentScore := 0.0
		if content != "" {
			if titleMatched.Contains(doc.ID) {
				contentScore += titleMatchScore
			}
			if sc.transcript != "" && strings.Contains(strings.ToLower(sc.transcript), content) {
				contentScore += transcriptMatchScore
			}
			if contentScore == 0 {
				// Passed the set intersections but matches neither title
				// nor transcript.
				continue
			}
		}

		sc.score = contentScore + recencyScore(now, doc.EffectiveDate()) +
			folderScore*float64(len(doc.Folders))
		if doc.HasAttendees() {
			sc.score += attendeeScore
		}
		scored = append(scored, sc)
	}
	return scored
}

// loadTranscripts reads candidate transcripts with bounded concurrency.
// A candidate whose transcript is absent or unreadable simply contributes
// no transcript match.
func (s *SearchService) loadTranscripts(ctx context.Context, docs []*domain.Document) map[string]string {
	transcripts := make(map[string]string, len(docs))
	if s.content == nil {
		return transcripts
	}

	pool, err := ants.NewPool(transcriptFanout)
	if err != nil {
		logger.Warn("Transcript pool unavailable, loading sequentially: %v", err)
		for _, doc := range docs {
			if text, terr := s.content.Transcript(ctx, doc.ID); terr == nil {
				transcripts[doc.ID] = text
			}
		}
		return transcripts
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, doc := range docs {
		id := doc.ID
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			text, terr := s.content.Transcript(ctx, id)
			if terr != nil {
				if !errors.Is(terr, domain.ErrNotFound) {
					logger.Debug("Transcript read failed for %s: %v", id, terr)
				}
				return
			}
			mu.Lock()
			transcripts[id] = text
			mu.Unlock()
		}); submitErr != nil {
			wg.Done()
			if text, terr := s.content.Transcript(ctx, id); terr == nil {
				transcripts[id] = text
			}
		}
	}
	wg.Wait()

	return transcripts
}

// assembleMatch builds the outgoing match for one kept candidate.
func (s *SearchService) assembleMatch(ctx context.Context, sc scoredDoc, includeTranscript, transcriptLoaded bool) domain.SearchMatch {
	doc := sc.doc
	match := domain.SearchMatch{
		DocumentID:    doc.ID,
		Title:         doc.Title,
		WorkspaceName: doc.WorkspaceName,
		Folders:       doc.FolderNames(),
		Attendees:     doc.Enrichment.Attendees,
		Score:         sc.score,
	}

	if eff := doc.EffectiveDate(); !eff.IsZero() {
		match.MeetingDate = &eff
	}

	if s.content != nil {
		if notes, err := s.content.Notes(ctx, doc.ID); err == nil {
			match.Snippet = makeSnippet(notes)
		}
	}

	if includeTranscript {
		if transcriptLoaded {
			match.Transcript = sc.transcript
		} else if s.content != nil {
			if text, err := s.content.Transcript(ctx, doc.ID); err == nil {
				match.Transcript = text
			}
		}
	}

	return match
}

// recencyScore decays linearly from recencyMaxScore by one point per
// recencyDecayDays elapsed, floored at zero. Future-dated meetings score
// the maximum.
func recencyScore(now, meeting time.Time) float64 {
	days := now.Sub(meeting).Hours() / 24
	score := recencyMaxScore - days/recencyDecayDays
	if score < 0 {
		return 0
	}
	if score > recencyMaxScore {
		return recencyMaxScore
	}
	return score
}

// makeSnippet trims notes text and truncates to snippetLength runes with
// an ellipsis marker.
func makeSnippet(notes string) string {
	trimmed := strings.TrimSpace(notes)
	runes := []rune(trimmed)
	if len(runes) <= snippetLength {
		return trimmed
	}
	return string(runes[:snippetLength]) + "..."
}

func describeRange(rng daterange.Range) string {
	switch {
	case !rng.Start.IsZero() && !rng.End.IsZero():
		return fmt.Sprintf("date within %s..%s",
			rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"))
	case !rng.Start.IsZero():
		return fmt.Sprintf("date from %s", rng.Start.Format("2006-01-02"))
	default:
		return fmt.Sprintf("date until %s", rng.End.Format("2006-01-02"))
	}
}

func describeSummary(parts []string) string {
	if len(parts) == 0 {
		return "no filters (all documents)"
	}
	return strings.Join(parts, "; ")
}
