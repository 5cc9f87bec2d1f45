package postgres

import (
	"context"
	"errors"
	"fmt"

	"industry-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	documentColumns     = `id, project_id, name, url, provider, external_id, mime_type, size, added_by, created_at`
	insertDocumentQuery = `
INSERT INTO documents(id, project_id, name, url, provider, external_id, mime_type, size, added_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + documentColumns
	listDocumentsQuery  = `SELECT ` + documentColumns + ` FROM documents WHERE project_id=$1 ORDER BY created_at DESC, id`
	selectDocumentQuery = `SELECT ` + documentColumns + ` FROM documents WHERE id=$1`
	deleteDocumentQuery = `DELETE FROM documents WHERE id=$1`
)

// CreateDocument links a document to a project.
func (p *Postgres) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	res, err := scanDocument(p.db.QueryRow(ctx, insertDocumentQuery,
		d.ID, d.ProjectID, d.Name, d.URL, d.Provider, d.ExternalID, d.MimeType, d.Size, d.AddedBy))
	if err != nil {
		p.log.Errorw("failed to insert document", "error", err, "project_id", d.ProjectID)
		return nil, fmt.Errorf("insert document: %w", err)
	}

	p.log.Infow("document linked", "document_id", res.ID, "project_id", res.ProjectID, "provider", res.Provider)
	return res, nil
}

// ListDocuments returns the documents of a project, newest first.
func (p *Postgres) ListDocuments(ctx context.Context, projectID string) ([]entities.Document, error) {
	rows, err := p.db.Query(ctx, listDocumentsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		res = append(res, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return res, nil
}

// GetDocument fetches a document link.
func (p *Postgres) GetDocument(ctx context.Context, id string) (*entities.Document, error) {
	res, err := scanDocument(p.db.QueryRow(ctx, selectDocumentQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return res, nil
}

// DeleteDocument unlinks a document.
func (p *Postgres) DeleteDocument(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteDocumentQuery, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrDocumentNotFound
	}
	p.log.Infow("document unlinked", "document_id", id)
	return nil
}

func scanDocument(row pgx.Row) (*entities.Document, error) {
	var d entities.Document
	if err := row.Scan(&d.ID, &d.ProjectID, &d.Name, &d.URL, &d.Provider, &d.ExternalID,
		&d.MimeType, &d.Size, &d.AddedBy, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
