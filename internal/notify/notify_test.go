package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"industry-flow/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSender struct {
	name string
	mu   sync.Mutex
	got  []entities.Notification
	err  error
	boom bool
}

func (s *recordingSender) Name() string { return s.name }

func (s *recordingSender) Send(_ context.Context, n entities.Notification) error {
	if s.boom {
		panic("sender exploded")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestDispatcherFansOut(t *testing.T) {
	d := NewDispatcher(context.Background(), zap.NewNop().Sugar(), true, time.Second)
	require.False(t, d.HasSenders())

	a := &recordingSender{name: "a"}
	b := &recordingSender{name: "b", err: errors.New("down")}
	c := &recordingSender{name: "c", boom: true}
	d.Register(a)
	d.Register(b)
	d.Register(c)
	require.True(t, d.HasSenders())

	d.Dispatch(entities.Notification{ID: "n1"})
	d.Dispatch(entities.Notification{ID: "n2"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))

	require.Equal(t, 2, a.count())
	require.Equal(t, 2, b.count())
}

func TestDispatcherSync(t *testing.T) {
	d := NewDispatcher(context.Background(), zap.NewNop().Sugar(), false, 0)
	a := &recordingSender{name: "a"}
	d.Register(a)

	d.Dispatch(entities.Notification{ID: "n1"})
	require.Equal(t, 1, a.count())
}

type usersStub map[string]*entities.User

func (u usersStub) UserByID(_ context.Context, id string) (*entities.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, entities.ErrUserNotFound
}

type mailerStub struct {
	to, subject, body string
}

func (m *mailerStub) SendMail(_ context.Context, to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func TestMailSender(t *testing.T) {
	mailer := &mailerStub{}
	s := NewMailSender(usersStub{"u1": {ID: "u1", Name: "Ada", Email: "ada@example.com"}}, mailer)
	require.Equal(t, "mail", s.Name())

	err := s.Send(context.Background(), entities.Notification{UserID: "u1", Title: "Task assigned", Message: "Survey site"})
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", mailer.to)
	require.Equal(t, "[industry-flow] Task assigned", mailer.subject)
	require.Contains(t, mailer.body, "Hello Ada")
	require.Contains(t, mailer.body, "Survey site")

	err = s.Send(context.Background(), entities.Notification{UserID: "ghost"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}
