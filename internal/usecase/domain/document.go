package domain

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
	"workio/internal/numbering"

	"golang.org/x/sync/errgroup"
)

// ReviewDecision is the outcome a reviewer gives a submitted document.
type ReviewDecision struct {
	Status   entities.DocumentStatus
	Reviewer string
	Comment  string
}

// ListDocuments returns one page of documents.
func (u *Usecase) ListDocuments(ctx context.Context, q listing.Query) (listing.Page[entities.Document], error) {
	ctx, end := u.begin(ctx, "ListDocuments")
	defer end()

	return u.repo.ListDocuments(ctx, normalize(q, listing.DocumentPageSize))
}

// Document returns a document with its versions and comments, newest first.
func (u *Usecase) Document(ctx context.Context, docNo string) (*entities.DocumentDetail, error) {
	ctx, end := u.begin(ctx, "Document")
	defer end()

	d, err := u.repo.GetDocument(ctx, strings.TrimSpace(docNo))
	if err != nil {
		return nil, err
	}

	detail := &entities.DocumentDetail{Document: *d}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		versions, err := u.repo.ListVersions(gctx, d.DocNo)
		detail.Versions = versions
		return err
	})
	g.Go(func() error {
		comments, err := u.repo.ListComments(gctx, d.DocNo)
		detail.Comments = comments
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("document relations: %w", err)
	}
	return detail, nil
}

// CreateDocument validates d, numbers it and stores it as a draft.
func (u *Usecase) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	ctx, end := u.begin(ctx, "CreateDocument")
	defer end()

	res, err := u.createDocument(ctx, d)
	u.finish(ctx, moduleDocuments, "Create Document", err, "Document created successfully")
	return res, err
}

func (u *Usecase) createDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	d = trimDocument(d)
	if err := u.validateDocument(ctx, d); err != nil {
		return nil, err
	}
	d.Reviewers, _ = cleanNames(d.Reviewers)

	now := u.now()
	d.Status = entities.DocumentDraft
	d.CreatedBy = entities.ActorFrom(ctx)
	d.LastUpdated = now
	d.SubmittedDate = nil
	d.ReviewedBy = ""

	prefix := numbering.DocumentPrefix(now)
	for attempt := 0; attempt < numberAttempts; attempt++ {
		n, err := u.repo.CountDocumentNumbers(ctx, prefix)
		if err != nil {
			return nil, err
		}
		d.DocNo = numbering.DocumentNo(now, n+1+attempt)

		res, err := u.repo.CreateDocument(ctx, d)
		if errors.Is(err, entities.ErrConflict) {
			u.log.Warnw("document number taken, retrying", "doc_no", d.DocNo, "attempt", attempt+1)
			continue
		}
		return res, err
	}
	return nil, fmt.Errorf("%w: could not allocate document number with prefix %s", entities.ErrConflict, prefix)
}

// UpdateDocument rewrites title, project, reviewers and notes.
func (u *Usecase) UpdateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	ctx, end := u.begin(ctx, "UpdateDocument")
	defer end()

	res, err := u.updateDocument(ctx, d)
	u.finish(ctx, moduleDocuments, "Update Document", err, "Document updated successfully")
	return res, err
}

func (u *Usecase) updateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	existing, err := u.repo.GetDocument(ctx, strings.TrimSpace(d.DocNo))
	if err != nil {
		return nil, err
	}
	d = trimDocument(d)
	if err := u.validateDocument(ctx, d); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = d.Title
	updated.ProjectNo = d.ProjectNo
	updated.Reviewers, _ = cleanNames(d.Reviewers)
	updated.Notes = d.Notes
	if d.FileName != "" {
		updated.FileName = d.FileName
	}
	updated.LastUpdated = u.now()
	return u.repo.UpdateDocument(ctx, updated)
}

// SubmitDocument moves a draft or rejected document to review.
func (u *Usecase) SubmitDocument(ctx context.Context, docNo string) (*entities.Document, error) {
	ctx, end := u.begin(ctx, "SubmitDocument")
	defer end()

	res, err := u.transition(ctx, docNo, entities.DocumentSubmitted, func(d *entities.Document) {
		now := u.now()
		d.SubmittedDate = &now
		d.ReviewedBy = ""
	})
	u.finish(ctx, moduleDocuments, "Submit Document", err, "Document submitted for review")
	return res, err
}

// ReviewDocument approves or rejects a submitted document.
func (u *Usecase) ReviewDocument(ctx context.Context, docNo string, decision ReviewDecision) (*entities.Document, error) {
	ctx, end := u.begin(ctx, "ReviewDocument")
	defer end()

	res, err := u.reviewDocument(ctx, docNo, decision)
	action := "Review Document"
	switch decision.Status {
	case entities.DocumentApproved:
		action = "Approve Document"
	case entities.DocumentRejected:
		action = "Reject Document"
	}
	u.finish(ctx, moduleDocuments, action, err, "Document "+strings.ToLower(string(decision.Status))+" successfully")
	return res, err
}

func (u *Usecase) reviewDocument(ctx context.Context, docNo string, decision ReviewDecision) (*entities.Document, error) {
	v := entities.NewValidationError()
	if decision.Status != entities.DocumentApproved && decision.Status != entities.DocumentRejected {
		v.Add("status", "Decision must be Approved or Rejected")
	}
	reviewer := strings.TrimSpace(decision.Reviewer)
	if reviewer == "" {
		reviewer = entities.ActorFrom(ctx)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	res, err := u.transition(ctx, docNo, decision.Status, func(d *entities.Document) {
		d.ReviewedBy = reviewer
	}, func(d *entities.Document) error {
		if len(d.Reviewers) > 0 && !slices.ContainsFunc(d.Reviewers, func(r string) bool {
			return strings.EqualFold(r, reviewer)
		}) {
			bad := entities.NewValidationError()
			bad.Add("reviewer", "Reviewer is not assigned to this document")
			return bad
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if msg := strings.TrimSpace(decision.Comment); msg != "" {
		if _, err := u.repo.AddComment(ctx, entities.Comment{
			DocNo:     res.DocNo,
			Author:    reviewer,
			JobTitle:  "Reviewer",
			Message:   msg,
			CreatedAt: u.now(),
		}); err != nil {
			return nil, fmt.Errorf("review comment: %w", err)
		}
	}
	return res, nil
}

func (u *Usecase) transition(
	ctx context.Context,
	docNo string,
	next entities.DocumentStatus,
	apply func(*entities.Document),
	checks ...func(*entities.Document) error,
) (*entities.Document, error) {
	d, err := u.repo.GetDocument(ctx, strings.TrimSpace(docNo))
	if err != nil {
		return nil, err
	}
	if !d.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s document cannot become %s", entities.ErrInvalidTransition, d.Status, next)
	}
	for _, check := range checks {
		if err := check(d); err != nil {
			return nil, err
		}
	}
	d.Status = next
	d.LastUpdated = u.now()
	apply(d)
	return u.repo.UpdateDocument(ctx, *d)
}

// UploadVersion records a new file version of a document.
func (u *Usecase) UploadVersion(ctx context.Context, docNo, version, fileName string) (*entities.DocumentVersion, error) {
	ctx, end := u.begin(ctx, "UploadVersion")
	defer end()

	res, err := u.uploadVersion(ctx, docNo, version, fileName)
	u.finish(ctx, moduleDocuments, "Upload Version", err, "New version uploaded successfully")
	return res, err
}

func (u *Usecase) uploadVersion(ctx context.Context, docNo, version, fileName string) (*entities.DocumentVersion, error) {
	version = strings.TrimSpace(version)
	fileName = path.Base(strings.TrimSpace(fileName))
	v := entities.NewValidationError()
	required(v, "version", version, "Version is required")
	if fileName == "" || fileName == "." || fileName == "/" {
		v.Add("file_name", "File is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	d, err := u.repo.GetDocument(ctx, strings.TrimSpace(docNo))
	if err != nil {
		return nil, err
	}

	now := u.now()
	res, err := u.repo.AddVersion(ctx, entities.DocumentVersion{
		DocNo:     d.DocNo,
		Version:   version,
		UpdatedBy: entities.ActorFrom(ctx),
		UpdatedAt: now,
		FileURL:   "/files/" + d.DocNo + "/" + fileName,
	})
	if err != nil {
		if errors.Is(err, entities.ErrConflict) {
			return nil, fmt.Errorf("%w: version %s already exists for %s", entities.ErrConflict, version, d.DocNo)
		}
		return nil, err
	}

	d.FileName = fileName
	d.LastUpdated = now
	if _, err := u.repo.UpdateDocument(ctx, *d); err != nil {
		return nil, err
	}
	return res, nil
}

// AddComment attaches a remark to a document.
func (u *Usecase) AddComment(ctx context.Context, c entities.Comment) (*entities.Comment, error) {
	ctx, end := u.begin(ctx, "AddComment")
	defer end()

	res, err := u.addComment(ctx, c)
	u.finish(ctx, moduleDocuments, "Add Comment", err, "Comment added")
	return res, err
}

func (u *Usecase) addComment(ctx context.Context, c entities.Comment) (*entities.Comment, error) {
	c.Message = strings.TrimSpace(c.Message)
	v := entities.NewValidationError()
	required(v, "message", c.Message, "Comment cannot be empty")
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	d, err := u.repo.GetDocument(ctx, strings.TrimSpace(c.DocNo))
	if err != nil {
		return nil, err
	}
	c.DocNo = d.DocNo
	c.Author = strings.TrimSpace(c.Author)
	if c.Author == "" {
		c.Author = entities.ActorFrom(ctx)
	}
	c.JobTitle = strings.TrimSpace(c.JobTitle)
	c.CreatedAt = u.now()
	return u.repo.AddComment(ctx, c)
}

// DocumentsByStatus lists documents with status for selection inputs.
func (u *Usecase) DocumentsByStatus(ctx context.Context, status entities.DocumentStatus) ([]entities.Option, error) {
	ctx, end := u.begin(ctx, "DocumentsByStatus")
	defer end()

	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown document status %q", entities.ErrInvalidArgument, status)
	}
	return u.repo.DocumentOptions(ctx, status)
}

func trimDocument(d entities.Document) entities.Document {
	d.Title = strings.TrimSpace(d.Title)
	d.ProjectNo = strings.TrimSpace(d.ProjectNo)
	d.Notes = strings.TrimSpace(d.Notes)
	d.FileName = strings.TrimSpace(d.FileName)
	return d
}

func (u *Usecase) validateDocument(ctx context.Context, d entities.Document) error {
	v := entities.NewValidationError()
	required(v, "title", d.Title, "Document title is required")

	reviewers, dup := cleanNames(d.Reviewers)
	switch {
	case dup:
		v.Add("reviewers", "Reviewers must be distinct")
	case len(reviewers) == 0:
		v.Add("reviewers", "At least one reviewer is required")
	case len(reviewers) > entities.MaxReviewers:
		v.Add("reviewers", fmt.Sprintf("At most %d reviewers are allowed", entities.MaxReviewers))
	}

	if d.ProjectNo == "" {
		v.Add("project_no", "Project is required")
	} else if _, err := u.repo.GetProject(ctx, d.ProjectNo); err != nil {
		if !errors.Is(err, entities.ErrProjectNotFound) {
			return err
		}
		v.Add("project_no", "Project does not exist")
	}
	return v.OrNil()
}
