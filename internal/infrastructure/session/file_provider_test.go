package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFileProvider_ReadWrite(t *testing.T) {
	ctx := context.Background()
	p := NewFileProvider(filepath.Join(t.TempDir(), "home"))

	s, err := p.GetCurrentSession(ctx)
	require.NoError(t, err)
	require.True(t, s.IsAnonymous())

	_, err = p.AccessToken(ctx)
	require.ErrorIs(t, err, ErrNoAccessToken)

	require.NoError(t, p.SignIn(entities.Session{UserID: "u1", AccessToken: "tok", Premium: true}))
	s, err = p.GetCurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.Session{Authenticated: true, UserID: "u1", AccessToken: "tok", Premium: true}, s)

	tok, err := p.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", tok)

	info, err := os.Stat(p.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, p.SignOut())
	require.NoError(t, p.SignOut())
	s, err = p.GetCurrentSession(ctx)
	require.NoError(t, err)
	require.True(t, s.IsAnonymous())

	require.Error(t, p.SignIn(entities.Session{UserID: " "}))
}

func TestFileProvider_BlankUserIsAnonymous(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("user_id: \"\"\naccess_token: tok\n"), 0o600))

	s, err := NewFileProvider(dir).GetCurrentSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, entities.Anonymous(), s)
}

func TestFileProvider_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("user_id: [unclosed"), 0o600))

	_, err := NewFileProvider(dir).GetCurrentSession(context.Background())
	require.Error(t, err)
}

func TestFileProvider_Subscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	p := NewFileProvider(t.TempDir())
	events, err := p.Subscribe(ctx)
	require.NoError(t, err)

	next := func() entities.SessionChanged {
		t.Helper()
		select {
		case ev := <-events:
			return ev
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for session change")
			return entities.SessionChanged{}
		}
	}

	require.NoError(t, p.SignIn(entities.Session{UserID: "u1", AccessToken: "tok"}))
	ev := next()
	require.True(t, ev.SignedIn())
	require.Equal(t, "u1", ev.Current.UserID)

	require.NoError(t, p.SignOut())
	ev = next()
	require.True(t, ev.SignedOut())
	require.Equal(t, "u1", ev.Previous.UserID)

	cancel()
	for range events {
	}
}
