// Package storage holds uploaded documents between the upload and parse
// calls. Entries are indexed by an opaque server-issued handle (filename
// lookup is kept as a fallback) and live only until a parse consumes them or
// the janitor evicts them.
package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/martin/portfolio-builder/internal/decoding"
)

// State tracks a stored document through its lifecycle. Transitions happen
// only on completion of the corresponding boundary call.
type State string

const (
	StateUploaded State = "uploaded"
	StateParsing  State = "parsing"
	StateParsed   State = "parsed"
	StateFailed   State = "failed"
)

// Document is one stored upload. Data is dropped once a parse run completes,
// successfully or not; re-parsing requires a fresh upload.
type Document struct {
	ID          string
	Filename    string
	Format      decoding.Format
	Data        []byte
	State       State
	FailureKind string
	UploadedAt  time.Time
}

// NotFoundError indicates no stored document matches the given key
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no uploaded document found for %q", e.Key)
}

// ConflictError indicates the document is already claimed by another parse
// request or has already been consumed.
type ConflictError struct {
	Key   string
	State State
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("document %q is not available for parsing (state: %s)", e.Key, e.State)
}

// Store is an in-memory, mutex-guarded document arena with TTL eviction.
type Store struct {
	mu   sync.Mutex
	docs map[string]*Document
	ttl  time.Duration
	stop chan struct{}
	once sync.Once
}

// NewStore creates a store whose entries are evicted ttl after upload.
// Eviction is best-effort cleanup for abandoned requests.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		docs: make(map[string]*Document),
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Stop terminates the janitor goroutine.
func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// Put stores an uploaded document and returns its server-issued handle.
func (s *Store) Put(filename string, format decoding.Format, data []byte) *Document {
	doc := &Document{
		ID:         uuid.NewString(),
		Filename:   filename,
		Format:     format,
		Data:       data,
		State:      StateUploaded,
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.mu.Unlock()
	return doc
}

// Claim gives the calling parse request exclusive access to a document,
// looked up by handle or, when the handle is empty, by original filename
// (most recent upload wins on collision). The claim moves the document to
// StateParsing; a second concurrent claim fails with ConflictError.
func (s *Store) Claim(id, filename string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, key, err := s.locate(id, filename)
	if err != nil {
		return nil, err
	}
	if doc.State != StateUploaded {
		return nil, &ConflictError{Key: key, State: doc.State}
	}
	doc.State = StateParsing

	cp := *doc
	return &cp, nil
}

// Release ends a claim. The document bytes are dropped either way — the raw
// upload is transient and a failed parse is fixed by re-uploading — while the
// entry itself stays until eviction so state remains observable.
func (s *Store) Release(id string, failureKind string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return
	}
	doc.Data = nil
	if failureKind == "" {
		doc.State = StateParsed
	} else {
		doc.State = StateFailed
		doc.FailureKind = failureKind
	}
}

// Delete resets a slot entirely.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
}

// Get returns a copy of the document's current metadata.
func (s *Store) Get(id string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, &NotFoundError{Key: id}
	}
	cp := *doc
	cp.Data = nil
	return &cp, nil
}

// locate finds a document by handle or by filename. Caller holds the lock.
func (s *Store) locate(id, filename string) (*Document, string, error) {
	if id != "" {
		doc, ok := s.docs[id]
		if !ok {
			return nil, "", &NotFoundError{Key: id}
		}
		return doc, id, nil
	}

	var newest *Document
	for _, doc := range s.docs {
		if doc.Filename != filename {
			continue
		}
		if newest == nil || doc.UploadedAt.After(newest.UploadedAt) {
			newest = doc
		}
	}
	if newest == nil {
		return nil, "", &NotFoundError{Key: filename}
	}
	return newest, filename, nil
}

// janitor evicts entries older than the TTL.
func (s *Store) janitor() {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, doc := range s.docs {
				if now.Sub(doc.UploadedAt) > s.ttl && doc.State != StateParsing {
					delete(s.docs, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
