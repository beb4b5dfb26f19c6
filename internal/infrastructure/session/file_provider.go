package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const fileName = "session.yaml"

var ErrNoAccessToken = errors.New("no access token, run zipquote login")

// FileProvider reads the signed-in identity from $ZIPQUOTE_HOME/session.yaml.
// A missing file is the anonymous session.
type FileProvider struct {
	dir string
	mu  sync.Mutex
	log *logrus.Entry
}

var _ interfaces.ISessionProvider = (*FileProvider)(nil)

func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir, log: logging.Component("session")}
}

// DefaultHome returns ZIPQUOTE_HOME, falling back to ~/.zipquote.
func DefaultHome() string {
	if v := strings.TrimSpace(os.Getenv("ZIPQUOTE_HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zipquote"
	}
	return filepath.Join(home, ".zipquote")
}

func (p *FileProvider) Path() string {
	return filepath.Join(p.dir, fileName)
}

func (p *FileProvider) GetCurrentSession(_ context.Context) (entities.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.read()
}

func (p *FileProvider) read() (entities.Session, error) {
	data, err := os.ReadFile(p.Path())
	if errors.Is(err, os.ErrNotExist) {
		return entities.Anonymous(), nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("read session: %w", err)
	}

	var s entities.Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return entities.Session{}, fmt.Errorf("parse session: %w", err)
	}
	s.UserID = strings.TrimSpace(s.UserID)
	s.Authenticated = s.UserID != ""
	if !s.Authenticated {
		return entities.Anonymous(), nil
	}
	return s, nil
}

// SignIn persists the session. The file is replaced atomically so watchers
// never observe a half-written document.
func (p *FileProvider) SignIn(s entities.Session) error {
	if strings.TrimSpace(s.UserID) == "" {
		return errors.New("sign in: empty user id")
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(p.dir, ".session-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p.Path())
}

func (p *FileProvider) SignOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := os.Remove(p.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// AccessToken satisfies remote.TokenSource.
func (p *FileProvider) AccessToken(ctx context.Context) (string, error) {
	s, err := p.GetCurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if s.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return s.AccessToken, nil
}

// Subscribe watches the session directory and emits a SessionChanged whenever
// the resolved session differs from the last one seen. The channel is closed
// when ctx is done.
func (p *FileProvider) Subscribe(ctx context.Context) (<-chan entities.SessionChanged, error) {
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(p.dir); err != nil {
		w.Close()
		return nil, err
	}

	prev, err := p.GetCurrentSession(ctx)
	if err != nil {
		prev = entities.Anonymous()
	}

	out := make(chan entities.SessionChanged, 4)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != fileName {
					continue
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				cur, err := p.GetCurrentSession(ctx)
				if err != nil {
					p.log.WithError(err).Warn("session file unreadable, keeping previous session")
					continue
				}
				if cur == prev {
					continue
				}
				change := entities.SessionChanged{Previous: prev, Current: cur}
				prev = cur
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				p.log.WithError(err).Warn("session watcher error")
			}
		}
	}()
	return out, nil
}
