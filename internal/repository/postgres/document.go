package postgres

import (
	"context"
	"errors"
	"fmt"

	"workio/internal/entities"
	"workio/internal/listing"

	"github.com/jackc/pgx/v5"
)

const (
	documentColumns = "id, doc_no, title, project_no, status, created_by, submitted_date, last_updated, reviewers, reviewed_by, notes, file_name"

	selectDocumentsByProjectQuery = "SELECT " + documentColumns + " FROM documents WHERE project_no=$1 ORDER BY id"
	selectDocumentQuery           = "SELECT " + documentColumns + " FROM documents WHERE doc_no=$1"
	countDocumentsByStatusQuery   = "SELECT status, COUNT(*) FROM documents GROUP BY status"
	countDocumentNoQuery          = "SELECT COUNT(*) FROM documents WHERE doc_no LIKE $1 || '%'"
	insertDocumentQuery           = `
INSERT INTO documents(doc_no, title, project_no, status, created_by, submitted_date, last_updated, reviewers, reviewed_by, notes, file_name)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING ` + documentColumns
	updateDocumentQuery = `
UPDATE documents SET title=$2, project_no=$3, status=$4, submitted_date=$5, last_updated=$6, reviewers=$7,
    reviewed_by=$8, notes=$9, file_name=$10
WHERE doc_no=$1
RETURNING ` + documentColumns
	documentOptionsQuery = "SELECT doc_no, title FROM documents WHERE status=$1 ORDER BY id"

	versionColumns      = "id, doc_no, version, updated_by, updated_at, file_url"
	selectVersionsQuery = "SELECT " + versionColumns + " FROM document_versions WHERE doc_no=$1 ORDER BY updated_at DESC, id DESC"
	insertVersionQuery  = `
INSERT INTO document_versions(doc_no, version, updated_by, updated_at, file_url)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + versionColumns

	commentColumns      = "id, doc_no, author, job_title, message, created_at"
	selectCommentsQuery = "SELECT " + commentColumns + " FROM document_comments WHERE doc_no=$1 ORDER BY created_at DESC, id DESC"
	insertCommentQuery  = `
INSERT INTO document_comments(doc_no, author, job_title, message, created_at)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + commentColumns
)

func scanDocument(s scanner) (entities.Document, error) {
	var d entities.Document
	err := s.Scan(&d.ID, &d.DocNo, &d.Title, &d.ProjectNo, &d.Status, &d.CreatedBy, &d.SubmittedDate,
		&d.LastUpdated, &d.Reviewers, &d.ReviewedBy, &d.Notes, &d.FileName)
	if d.Reviewers == nil {
		d.Reviewers = []string{}
	}
	return d, err
}

func scanVersion(s scanner) (entities.DocumentVersion, error) {
	var v entities.DocumentVersion
	err := s.Scan(&v.ID, &v.DocNo, &v.Version, &v.UpdatedBy, &v.UpdatedAt, &v.FileURL)
	return v, err
}

func scanComment(s scanner) (entities.Comment, error) {
	var c entities.Comment
	err := s.Scan(&c.ID, &c.DocNo, &c.Author, &c.JobTitle, &c.Message, &c.CreatedAt)
	return c, err
}

// ListDocuments filters by status and searches title, number and author.
func (p *Postgres) ListDocuments(ctx context.Context, q listing.Query) (page listing.Page[entities.Document], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "title", "doc_no", "created_by")
		page, err = listPage(ctx, p.db, "documents", documentColumns, "id", f, q, scanDocument)
		return err
	})
	return page, err
}

// DocumentsByProject returns documents attached to a project number.
func (p *Postgres) DocumentsByProject(ctx context.Context, projectNo string) (out []entities.Document, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, selectDocumentsByProjectQuery, scanDocument, projectNo)
		return err
	})
	return out, err
}

// CountDocumentsByStatus groups documents by status.
func (p *Postgres) CountDocumentsByStatus(ctx context.Context) (map[entities.DocumentStatus]int, error) {
	type row struct {
		status entities.DocumentStatus
		n      int
	}
	var rows []row
	err := p.guard(func() error {
		var err error
		rows, err = queryAll(ctx, p.db, countDocumentsByStatusQuery, func(s scanner) (row, error) {
			var r row
			err := s.Scan(&r.status, &r.n)
			return r, err
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("documents by status: %w", err)
	}

	out := make(map[entities.DocumentStatus]int, len(rows))
	for _, r := range rows {
		out[r.status] = r.n
	}
	return out, nil
}

// GetDocument finds a document by number.
func (p *Postgres) GetDocument(ctx context.Context, docNo string) (*entities.Document, error) {
	return p.documentRow(ctx, "get document", selectDocumentQuery, docNo)
}

// CountDocumentNumbers counts documents whose number starts with prefix.
func (p *Postgres) CountDocumentNumbers(ctx context.Context, prefix string) (n int, err error) {
	err = p.guard(func() error {
		if err := p.db.QueryRow(ctx, countDocumentNoQuery, escapeLike(prefix)).Scan(&n); err != nil {
			return fmt.Errorf("count document numbers: %w", err)
		}
		return nil
	})
	return n, err
}

// CreateDocument inserts a document. A taken number is ErrConflict.
func (p *Postgres) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	return p.documentRow(ctx, "insert document", insertDocumentQuery,
		d.DocNo, d.Title, d.ProjectNo, d.Status, d.CreatedBy, d.SubmittedDate, d.LastUpdated,
		textArray(d.Reviewers), d.ReviewedBy, d.Notes, d.FileName)
}

// UpdateDocument rewrites a document by number.
func (p *Postgres) UpdateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	return p.documentRow(ctx, "update document", updateDocumentQuery,
		d.DocNo, d.Title, d.ProjectNo, d.Status, d.SubmittedDate, d.LastUpdated,
		textArray(d.Reviewers), d.ReviewedBy, d.Notes, d.FileName)
}

// DocumentOptions returns number/title pairs of documents with status.
func (p *Postgres) DocumentOptions(ctx context.Context, status entities.DocumentStatus) (out []entities.Option, err error) {
	err = p.guard(func() error {
		out, err = queryOptions(ctx, p.db, documentOptionsQuery, status)
		return err
	})
	return out, err
}

// ListVersions returns the version history of a document, newest first.
func (p *Postgres) ListVersions(ctx context.Context, docNo string) (out []entities.DocumentVersion, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, selectVersionsQuery, scanVersion, docNo)
		return err
	})
	return out, err
}

// AddVersion appends a version. Labels are unique per document.
func (p *Postgres) AddVersion(ctx context.Context, v entities.DocumentVersion) (res *entities.DocumentVersion, err error) {
	err = p.guard(func() error {
		created, err := scanVersion(p.db.QueryRow(ctx, insertVersionQuery, v.DocNo, v.Version, v.UpdatedBy, v.UpdatedAt, v.FileURL))
		if err != nil {
			if isUniqueViolation(err) {
				return entities.ErrConflict
			}
			return fmt.Errorf("insert version: %w", err)
		}
		res = &created
		return nil
	})
	return res, err
}

// ListComments returns comments on a document, newest first.
func (p *Postgres) ListComments(ctx context.Context, docNo string) (out []entities.Comment, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, selectCommentsQuery, scanComment, docNo)
		return err
	})
	return out, err
}

// AddComment appends a comment.
func (p *Postgres) AddComment(ctx context.Context, c entities.Comment) (res *entities.Comment, err error) {
	err = p.guard(func() error {
		created, err := scanComment(p.db.QueryRow(ctx, insertCommentQuery, c.DocNo, c.Author, c.JobTitle, c.Message, c.CreatedAt))
		if err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		res = &created
		return nil
	})
	return res, err
}

func (p *Postgres) documentRow(ctx context.Context, op, query string, args ...any) (res *entities.Document, err error) {
	err = p.guard(func() error {
		d, err := scanDocument(p.db.QueryRow(ctx, query, args...))
		if err != nil {
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				return entities.ErrDocumentNotFound
			case isUniqueViolation(err):
				return entities.ErrConflict
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		res = &d
		return nil
	})
	return res, err
}
