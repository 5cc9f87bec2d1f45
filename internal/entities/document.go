package entities

import "time"

// DocumentProvider tells where a linked document lives.
type DocumentProvider string

const (
	ProviderOneDrive DocumentProvider = "onedrive"
	ProviderLink     DocumentProvider = "link"
)

// Document is a link from a project to an external file.
type Document struct {
	ID         string
	ProjectID  string
	Name       string
	URL        string
	Provider   DocumentProvider
	ExternalID string
	MimeType   string
	Size       int64
	AddedBy    string
	CreatedAt  time.Time
}
