// Package pipeline provides the high-level orchestration for one itinerary
// generation: validate metadata, extract reference files, build the
// document skeleton, compose the narrative.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mariana/itinerary-studio/internal/extraction"
	"github.com/mariana/itinerary-studio/internal/itinerary"
	"github.com/mariana/itinerary-studio/internal/narrative"
	"github.com/mariana/itinerary-studio/internal/types"
)

// extractConcurrency bounds per-file extraction within one request.
const extractConcurrency = 4

// Options holds the collaborators for a generation. Zero-value fields fall
// back to the defaults, so tests can inject a counting extractor or a
// builder with a different general-reference policy.
type Options struct {
	Extractor extraction.Extractor
	Builder   *itinerary.Builder
	Composer  *narrative.Composer
}

// Generate runs the whole pipeline synchronously and returns the composed
// canonical document. Metadata validation happens first: on an invalid form
// the extractor is never invoked. Per-file extraction faults never surface
// here; they are absorbed into reference statuses by the extractor.
func Generate(ctx context.Context, meta types.TripMetadata, files []types.ReferenceFile, opts Options) (*types.ItineraryDocument, error) {
	if opts.Extractor == nil {
		opts.Extractor = extraction.New()
	}
	if opts.Builder == nil {
		opts.Builder = &itinerary.Builder{}
	}
	if opts.Composer == nil {
		opts.Composer = &narrative.Composer{}
	}

	if err := itinerary.ValidateMetadata(meta); err != nil {
		return nil, err
	}

	refs := extractAll(ctx, opts.Extractor, files)

	skeleton, err := opts.Builder.Build(meta, refs)
	if err != nil {
		return nil, err
	}

	return opts.Composer.Compose(skeleton), nil
}

// extractAll extracts every file, bounded-concurrently, preserving the
// input order in the result. Extraction is total, so the group never fails.
func extractAll(ctx context.Context, ex extraction.Extractor, files []types.ReferenceFile) []types.ExtractedReference {
	refs := make([]types.ExtractedReference, len(files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)
	for i, file := range files {
		g.Go(func() error {
			refs[i] = ex.Extract(file)
			return nil
		})
	}
	_ = g.Wait()
	return refs
}
