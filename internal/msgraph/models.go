package msgraph

// DriveItem is the subset of a Graph driveItem used for document links.
type DriveItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"webUrl"`
	Size   int64  `json:"size"`
	File   *struct {
		MimeType string `json:"mimeType"`
	} `json:"file"`
	Folder *struct {
		ChildCount int `json:"childCount"`
	} `json:"folder"`
}

// MimeType returns the file MIME type, empty for folders.
func (d DriveItem) MimeType() string {
	if d.File == nil {
		return ""
	}
	return d.File.MimeType
}

// Message is an Outlook mail message.
type Message struct {
	Subject      string      `json:"subject"`
	Body         *MailBody   `json:"body"`
	ToRecipients []Recipient `json:"toRecipients"`
}

// MailBody is the body of a message.
type MailBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Recipient is a message recipient.
type Recipient struct {
	EmailAddress *EmailAddressDetail `json:"emailAddress"`
}

// EmailAddressDetail contains email address details.
type EmailAddressDetail struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

type sendMailRequest struct {
	Message         Message `json:"message"`
	SaveToSentItems bool    `json:"saveToSentItems"`
}

type graphErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
