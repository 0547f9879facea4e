// Package session retains the most recently generated itinerary document
// per user session so the PDF route can re-render it without recomputation.
package session

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mariana/itinerary-studio/internal/types"
)

// Record pairs a stored document with its creation time.
type Record struct {
	SessionID string
	Document  *types.ItineraryDocument
	CreatedAt time.Time
}

// Store holds one document per session in process memory. Expired records
// are purged in the background; expiry is the session-end hook, no durable
// storage exists. Safe for concurrent use across sessions; within a single
// session the last write wins.
type Store struct {
	cache *cache.Cache
	now   func() time.Time
}

// New creates a store whose records expire after ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, ttl/2),
		now:   time.Now,
	}
}

// Put stores the document for a session, overwriting any prior one. A new
// generation always discards the previous itinerary; there is no history.
func (s *Store) Put(sessionID string, doc *types.ItineraryDocument) {
	s.cache.Set(sessionID, &Record{
		SessionID: sessionID,
		Document:  doc,
		CreatedAt: s.now(),
	}, cache.DefaultExpiration)
}

// Get returns the session's document, or ErrNotFound when the session never
// generated one or its record has expired.
func (s *Store) Get(sessionID string) (*types.ItineraryDocument, error) {
	v, found := s.cache.Get(sessionID)
	if !found {
		return nil, &ErrNotFound{SessionID: sessionID}
	}
	return v.(*Record).Document, nil
}

// Evict drops the session's record, if any. Called on explicit session end.
func (s *Store) Evict(sessionID string) {
	s.cache.Delete(sessionID)
}
