package notify

import (
	"context"
	"fmt"
	"strings"

	"industry-flow/internal/entities"
)

// UserLookup finds the account a notification is addressed to.
type UserLookup interface {
	UserByID(ctx context.Context, id string) (*entities.User, error)
}

// Mailer sends plain text mail.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// MailSender mails notifications to the recipient's account email.
type MailSender struct {
	users  UserLookup
	mailer Mailer
}

// NewMailSender builds a mail channel.
func NewMailSender(users UserLookup, mailer Mailer) *MailSender {
	return &MailSender{users: users, mailer: mailer}
}

// Name implements Sender.
func (s *MailSender) Name() string { return "mail" }

// Send implements Sender.
func (s *MailSender) Send(ctx context.Context, n entities.Notification) error {
	user, err := s.users.UserByID(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("lookup recipient: %w", err)
	}
	return s.mailer.SendMail(ctx, user.Email, "[industry-flow] "+n.Title, mailBody(user, n))
}

func mailBody(user *entities.User, n entities.Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", user.Name)
	b.WriteString(n.Title)
	b.WriteString("\n")
	if n.Message != "" {
		b.WriteString("\n")
		b.WriteString(n.Message)
		b.WriteString("\n")
	}
	return b.String()
}
