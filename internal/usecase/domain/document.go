package domain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"industry-flow/internal/entities"

	"github.com/google/uuid"
)

// ListDocuments returns the documents linked to a project.
func (u *Usecase) ListDocuments(ctx context.Context, p entities.Principal, projectID string) ([]entities.Document, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectView); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return u.repo.ListDocuments(ctx, projectID)
}

// AddDocument links a file to a project. OneDrive and SharePoint links are
// resolved through Graph when the integration is enabled.
func (u *Usecase) AddDocument(ctx context.Context, p entities.Principal, projectID, name, rawURL string) (*entities.Document, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermDocumentWrite); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	link, err := parseDocumentURL(rawURL)
	if err != nil {
		return nil, err
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	doc := entities.Document{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      strings.TrimSpace(name),
		URL:       link.String(),
		Provider:  entities.ProviderLink,
		AddedBy:   p.UserID,
	}

	if u.links != nil && u.links.Enabled() && u.links.Supports(doc.URL) {
		item, err := u.links.ResolveSharedLink(ctx, doc.URL)
		switch {
		case errors.Is(err, entities.ErrIntegrationDisabled):
		case err != nil:
			u.log.Warnw("failed to resolve shared link", "url", doc.URL, "error", err)
			return nil, fmt.Errorf("%w: cannot resolve shared link: %v", entities.ErrInvalidArgument, err)
		default:
			doc.Provider = entities.ProviderOneDrive
			doc.ExternalID = item.ID
			doc.MimeType = item.MimeType()
			doc.Size = item.Size
			if doc.Name == "" {
				doc.Name = item.Name
			}
		}
	}
	if doc.Name == "" {
		doc.Name = lastSegment(link)
	}

	created, err := u.repo.CreateDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, p, u.memberUserID(ctx, project.ManagerID), entities.Notification{
		Type:       entities.NotifyDocumentAdded,
		Title:      "New document in " + project.Name,
		Message:    created.Name,
		EntityType: "project",
		EntityID:   project.ID,
	})
	return created, nil
}

// DeleteDocument unlinks a document.
func (u *Usecase) DeleteDocument(ctx context.Context, p entities.Principal, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermDocumentWrite); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: document id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteDocument(ctx, id)
}

func parseDocumentURL(rawURL string) (*url.URL, error) {
	link, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (link.Scheme != "http" && link.Scheme != "https") || link.Host == "" {
		return nil, fmt.Errorf("%w: url must be an absolute http(s) link", entities.ErrInvalidArgument)
	}
	return link, nil
}

func lastSegment(link *url.URL) string {
	seg := path.Base(link.Path)
	if seg == "/" || seg == "." || seg == "" {
		return link.Host
	}
	if unescaped, err := url.PathUnescape(seg); err == nil {
		return unescaped
	}
	return seg
}
