package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const notebookFileMode = 0o644

// DocumentEventType names what happened to a document.
type DocumentEventType string

// Document events delivered to subscribers.
const (
	EventChanged  DocumentEventType = "changed"
	EventSaved    DocumentEventType = "saved"
	EventBackedUp DocumentEventType = "backed-up"
)

// DocumentEvent is delivered to the subscribers of one document.
type DocumentEvent struct {
	Type       DocumentEventType
	DocumentID string
	Location   m.Path
}

// ContentProvider opens, saves and backs up notebook documents and owns the
// change notifications for the documents it opened.
type ContentProvider interface {
	Open(ctx context.Context, location m.Path, untitled bool) (*m.Document, error)
	Save(ctx context.Context, doc *m.Document, location m.Path) error
	SaveAs(ctx context.Context, doc *m.Document, newLocation m.Path) error
	Backup(ctx context.Context, doc *m.Document, destination m.Path) (*Backup, error)

	// Subscribe registers fn for events of the document with the given ID and
	// returns a function that removes the subscription.
	Subscribe(documentID string, fn func(DocumentEvent)) (unsubscribe func())
	// NotifyChanged tells the subscribers of doc that its content changed.
	NotifyChanged(doc *m.Document, location m.Path)
}

// Backup is an independent snapshot of a document written to storage.
type Backup struct {
	ID       string
	Location m.Path

	storage  adapter.StorageAdapter
	disposed bool
	mu       sync.Mutex
}

// Dispose deletes the backup. Calling it more than once is a no-op.
func (b *Backup) Dispose(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		return nil
	}

	if err := b.storage.Remove(ctx, b.Location); err != nil {
		return fmt.Errorf("delete backup %s: %w", b.Location, err)
	}

	b.disposed = true

	return nil
}

type subscription struct {
	id int
	fn func(DocumentEvent)
}

type contentProvider struct {
	storage adapter.StorageAdapter

	mu          sync.Mutex
	nextSubID   int
	subscribers map[string][]subscription
}

// NewContentProvider constructs a ContentProvider backed by storage.
func NewContentProvider(storage adapter.StorageAdapter) ContentProvider {
	return &contentProvider{
		storage:     storage,
		subscribers: map[string][]subscription{},
	}
}

func (p *contentProvider) Open(ctx context.Context, location m.Path, untitled bool) (*m.Document, error) {
	var doc *m.Document

	if untitled {
		doc = m.Template()
	} else {
		data, err := p.storage.ReadFile(ctx, location)
		if err != nil {
			slog.Error("Failed to read notebook", "location", location, "error", err)
			return nil, fmt.Errorf("read notebook %s: %w", location, err)
		}

		doc = Decode(data)
	}

	doc.ID = uuid.New().String()
	doc.Location = location

	return doc, nil
}

func (p *contentProvider) Save(ctx context.Context, doc *m.Document, location m.Path) error {
	if err := p.write(ctx, doc, location); err != nil {
		return err
	}

	p.publish(DocumentEvent{Type: EventSaved, DocumentID: doc.ID, Location: location})

	return nil
}

// SaveAs writes doc to newLocation and makes it the document's location.
// The previous location is left untouched.
func (p *contentProvider) SaveAs(ctx context.Context, doc *m.Document, newLocation m.Path) error {
	if err := p.Save(ctx, doc, newLocation); err != nil {
		return err
	}

	doc.Location = newLocation

	return nil
}

func (p *contentProvider) Backup(ctx context.Context, doc *m.Document, destination m.Path) (*Backup, error) {
	if err := p.write(ctx, doc, destination); err != nil {
		return nil, err
	}

	p.publish(DocumentEvent{Type: EventBackedUp, DocumentID: doc.ID, Location: destination})

	return &Backup{
		ID:       uuid.New().String(),
		Location: destination,
		storage:  p.storage,
	}, nil
}

func (p *contentProvider) write(ctx context.Context, doc *m.Document, location m.Path) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	if err := p.storage.WriteFile(ctx, location, data, notebookFileMode); err != nil {
		slog.Error("Failed to write notebook", "location", location, "error", err)
		return fmt.Errorf("write notebook %s: %w", location, err)
	}

	return nil
}

func (p *contentProvider) Subscribe(documentID string, fn func(DocumentEvent)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextSubID++
	id := p.nextSubID
	p.subscribers[documentID] = append(p.subscribers[documentID], subscription{id: id, fn: fn})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		subs := p.subscribers[documentID]
		for i, sub := range subs {
			if sub.id == id {
				p.subscribers[documentID] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}

		if len(p.subscribers[documentID]) == 0 {
			delete(p.subscribers, documentID)
		}
	}
}

func (p *contentProvider) NotifyChanged(doc *m.Document, location m.Path) {
	p.publish(DocumentEvent{Type: EventChanged, DocumentID: doc.ID, Location: location})
}

func (p *contentProvider) publish(event DocumentEvent) {
	p.mu.Lock()
	subs := append([]subscription(nil), p.subscribers[event.DocumentID]...)
	p.mu.Unlock()

	for _, sub := range subs {
		sub.fn(event)
	}
}
