package memory

import (
	"context"
	"slices"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListDocuments filters by status and searches title, number and author.
func (m *Memory) ListDocuments(_ context.Context, q listing.Query) (listing.Page[entities.Document], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page := listing.Apply(m.documents, q, func(d entities.Document) bool {
		return q.MatchStatus(string(d.Status)) && q.MatchSearch(d.Title, d.DocNo, d.CreatedBy)
	})
	return listing.Map(page, cloneDocument), nil
}

// DocumentsByProject returns documents attached to a project number.
func (m *Memory) DocumentsByProject(_ context.Context, projectNo string) ([]entities.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Document, 0)
	for _, d := range m.documents {
		if d.ProjectNo == projectNo {
			out = append(out, cloneDocument(d))
		}
	}
	return out, nil
}

// CountDocumentsByStatus groups documents by status.
func (m *Memory) CountDocumentsByStatus(_ context.Context) (map[entities.DocumentStatus]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := map[entities.DocumentStatus]int{}
	for _, d := range m.documents {
		out[d.Status]++
	}
	return out, nil
}

// GetDocument finds a document by number.
func (m *Memory) GetDocument(_ context.Context, docNo string) (*entities.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.documents {
		if d.DocNo == docNo {
			d := cloneDocument(d)
			return &d, nil
		}
	}
	return nil, entities.ErrDocumentNotFound
}

// CountDocumentNumbers counts documents whose number starts with prefix.
func (m *Memory) CountDocumentNumbers(_ context.Context, prefix string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, d := range m.documents {
		if strings.HasPrefix(d.DocNo, prefix) {
			n++
		}
	}
	return n, nil
}

// CreateDocument stores a document under a new id.
func (m *Memory) CreateDocument(_ context.Context, d entities.Document) (*entities.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.documents {
		if existing.DocNo == d.DocNo {
			return nil, entities.ErrConflict
		}
	}
	d.ID = m.next("document")
	m.documents = append(m.documents, cloneDocument(d))
	out := cloneDocument(d)
	return &out, nil
}

// UpdateDocument replaces the document with the same number.
func (m *Memory) UpdateDocument(_ context.Context, d entities.Document) (*entities.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.documents {
		if existing.DocNo == d.DocNo {
			d.ID = existing.ID
			m.documents[i] = cloneDocument(d)
			out := cloneDocument(d)
			return &out, nil
		}
	}
	return nil, entities.ErrDocumentNotFound
}

// ListVersions returns the version history of a document, newest first.
func (m *Memory) ListVersions(_ context.Context, docNo string) ([]entities.DocumentVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.DocumentVersion, 0)
	for _, v := range m.versions {
		if v.DocNo == docNo {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.DocumentVersion) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return out, nil
}

// AddVersion appends a version. Labels are unique per document.
func (m *Memory) AddVersion(_ context.Context, v entities.DocumentVersion) (*entities.DocumentVersion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.versions {
		if existing.DocNo == v.DocNo && strings.EqualFold(existing.Version, v.Version) {
			return nil, entities.ErrConflict
		}
	}
	v.ID = m.next("version")
	m.versions = append(m.versions, v)
	return &v, nil
}

// ListComments returns comments on a document, newest first.
func (m *Memory) ListComments(_ context.Context, docNo string) ([]entities.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Comment, 0)
	for _, c := range m.comments {
		if c.DocNo == docNo {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.Comment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return out, nil
}

// AddComment appends a comment.
func (m *Memory) AddComment(_ context.Context, c entities.Comment) (*entities.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.next("comment")
	m.comments = append(m.comments, c)
	return &c, nil
}

// DocumentOptions returns number/title pairs of documents with status.
func (m *Memory) DocumentOptions(_ context.Context, status entities.DocumentStatus) ([]entities.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Option, 0)
	for _, d := range m.documents {
		if d.Status == status {
			out = append(out, entities.Option{ID: d.DocNo, Name: d.Title})
		}
	}
	return out, nil
}
