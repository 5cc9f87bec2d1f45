// Package msgraph talks to Microsoft Graph for OneDrive link metadata and
// Outlook mail.
package msgraph

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"industry-flow/config"
	"industry-flow/internal/entities"

	fastshot "github.com/opus-domini/fast-shot"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultScope = "https://graph.microsoft.com/.default"

// Client is an application-authenticated Graph client. A client built from a
// disabled configuration answers every call with entities.ErrIntegrationDisabled.
type Client struct {
	enabled bool
	sender  string
	http    fastshot.ClientHttpMethods
	tokens  oauth2.TokenSource
	log     *zap.SugaredLogger
}

// New constructs a Graph client from configuration.
func New(cfg config.GraphConfig, log *zap.SugaredLogger) *Client {
	c := &Client{
		enabled: cfg.Enabled,
		sender:  cfg.MailSender,
		log:     log.Named("msgraph"),
	}
	if !cfg.Enabled {
		return c
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenEndpoint(),
		Scopes:       []string{defaultScope},
	}
	c.tokens = cc.TokenSource(context.Background())

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c.http = fastshot.NewClient(strings.TrimRight(cfg.BaseURL, "/")).
		Config().SetTimeout(timeout).
		Config().SetFollowRedirects(true).
		Header().Add("Accept", "application/json").
		Build()
	return c
}

// Enabled reports whether Graph credentials are configured.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Supports reports whether rawURL is a link Graph can resolve.
func (c *Client) Supports(rawURL string) bool {
	return IsOneDriveURL(rawURL)
}

// IsOneDriveURL reports whether rawURL points at OneDrive or SharePoint.
func IsOneDriveURL(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case host == "1drv.ms", host == "onedrive.live.com":
		return true
	case strings.HasSuffix(host, ".sharepoint.com"):
		return true
	}
	return false
}

// EncodeShareURL turns a sharing link into a Graph share id.
func EncodeShareURL(rawURL string) string {
	return "u!" + base64.RawURLEncoding.EncodeToString([]byte(rawURL))
}

// ResolveSharedLink returns the drive item behind a sharing link.
func (c *Client) ResolveSharedLink(ctx context.Context, rawURL string) (*DriveItem, error) {
	if !c.enabled {
		return nil, entities.ErrIntegrationDisabled
	}

	token, err := c.token()
	if err != nil {
		return nil, err
	}

	resp, err := c.http.
		GET("/shares/"+EncodeShareURL(rawURL)+"/driveItem").
		Context().Set(ctx).
		Header().Add("Authorization", "Bearer "+token).
		Send()
	if err != nil {
		return nil, fmt.Errorf("resolve shared link: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		return nil, responseError(resp)
	}

	var item DriveItem
	if err := resp.Body().AsJSON(&item); err != nil {
		return nil, fmt.Errorf("decode drive item: %w", err)
	}
	c.log.Debugw("shared link resolved", "item_id", item.ID, "name", item.Name)
	return &item, nil
}

// SendMail sends a plain text message from the configured mailbox.
func (c *Client) SendMail(ctx context.Context, to, subject, body string) error {
	if !c.enabled || c.sender == "" {
		return entities.ErrIntegrationDisabled
	}
	if to == "" {
		return fmt.Errorf("%w: recipient is required", entities.ErrInvalidArgument)
	}

	token, err := c.token()
	if err != nil {
		return err
	}

	req := sendMailRequest{
		Message: Message{
			Subject:      subject,
			Body:         &MailBody{ContentType: "Text", Content: body},
			ToRecipients: []Recipient{{EmailAddress: &EmailAddressDetail{Address: to}}},
		},
		SaveToSentItems: false,
	}

	resp, err := c.http.
		POST("/users/"+url.PathEscape(c.sender)+"/sendMail").
		Context().Set(ctx).
		Header().Add("Authorization", "Bearer "+token).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(req).
		Send()
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		return responseError(resp)
	}
	return nil
}

func (c *Client) token() (string, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("graph token: %w", err)
	}
	return tok.AccessToken, nil
}

func responseError(resp *fastshot.Response) error {
	msg, err := resp.Body().AsString()
	if err != nil {
		return fmt.Errorf("graph: read error response: %w", err)
	}

	var ge graphErrorResponse
	if json.Unmarshal([]byte(msg), &ge) == nil && ge.Error.Code != "" {
		return fmt.Errorf("graph: %s: %s", ge.Error.Code, ge.Error.Message)
	}
	return errors.New("graph: " + strings.TrimSpace(msg))
}
