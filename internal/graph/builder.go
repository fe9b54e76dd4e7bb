package graph

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/patterns"
)

// edges are static relationship descriptions between graph nodes. They are
// documentation carried on the graph, not inputs to any computation.
func edges() map[string]string {
	return map[string]string{
		"urgency_to_sender":         "sender importance influences urgency perception",
		"urgency_to_actions":        "action items increase urgency level",
		"category_to_urgency":       "certain categories (e.g., financial) may have higher urgency",
		"temporal_to_urgency":       "deadlines and meeting times indicate urgency",
		"attachments_to_importance": "presence of attachments may indicate importance",
	}
}

// Build assembles the knowledge graph for one email. The seven extractors
// have no data dependency on one another and run concurrently; each writes
// its own node field, so no locking is needed. Build always succeeds for a
// well-formed record.
func Build(ctx context.Context, lib *patterns.Library, email *model.EmailRecord) *model.KnowledgeGraph {
	g := &model.KnowledgeGraph{
		Email: email.Meta(),
		Edges: edges(),
		Metadata: model.GraphMetadata{
			BodyLength:     len(email.Body),
			HasAttachments: len(email.Attachments) > 0,
			ExtractedAt:    time.Now().UTC(),
		},
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error { g.Nodes.Categories = ExtractCategories(lib, email); return nil })
	eg.Go(func() error { g.Nodes.Keywords = ExtractKeywords(lib, email); return nil })
	eg.Go(func() error { g.Nodes.UrgencyIndicators = ExtractUrgencyIndicators(lib, email); return nil })
	eg.Go(func() error { g.Nodes.ActionItems = ExtractActionItems(lib, email); return nil })
	eg.Go(func() error { g.Nodes.SenderImportance = AnalyzeSenderImportance(lib, email.Sender); return nil })
	eg.Go(func() error { g.Nodes.TemporalContext = ExtractTemporalContext(lib, email); return nil })
	eg.Go(func() error { g.Nodes.AttachmentContext = AnalyzeAttachments(lib, email.Attachments); return nil })
	_ = eg.Wait()

	return g
}
