package domain

import (
	"context"
	"fmt"
	"time"

	"industry-flow/internal/analytics"
	"industry-flow/internal/entities"
	"industry-flow/internal/msgraph"
	"industry-flow/internal/repository"

	"go.uber.org/zap"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(user entities.User) (string, time.Time, error)
}

// LinkResolver resolves cloud storage share links into file metadata.
type LinkResolver interface {
	Enabled() bool
	Supports(rawURL string) bool
	ResolveSharedLink(ctx context.Context, rawURL string) (*msgraph.DriveItem, error)
}

// Notifier delivers stored notifications over extra channels.
type Notifier interface {
	Dispatch(n entities.Notification)
}

// Deps bundles collaborators of the usecase layer other than storage.
type Deps struct {
	Rates           *analytics.Rates
	DefaultCurrency string
	Tokens          TokenIssuer
	Links           LinkResolver
	Notifier        Notifier
	Now             func() time.Time
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx             context.Context
	log             *zap.SugaredLogger
	repo            repository.Repository
	rates           *analytics.Rates
	defaultCurrency string
	tokens          TokenIssuer
	links           LinkResolver
	notifier        Notifier
	now             func() time.Time
	timeout         time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	deps Deps,
	timeout time.Duration,
) *Usecase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	defaultCurrency := deps.DefaultCurrency
	if defaultCurrency == "" && deps.Rates != nil {
		defaultCurrency = deps.Rates.Base()
	}
	return &Usecase{
		ctx:             ctx,
		log:             log,
		repo:            repo,
		rates:           deps.Rates,
		defaultCurrency: defaultCurrency,
		tokens:          deps.Tokens,
		links:           deps.Links,
		notifier:        deps.Notifier,
		now:             now,
		timeout:         timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func authorize(p entities.Principal, perm entities.Permission) error {
	if p.UserID == "" {
		return entities.ErrUnauthorized
	}
	if !p.Can(perm) {
		return fmt.Errorf("%w: role %s lacks %s", entities.ErrForbidden, p.Role, perm)
	}
	return nil
}
