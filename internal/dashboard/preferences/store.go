// Package preferences holds the user's theme and language. The Store is
// created once by the application and handed to whoever needs it.
package preferences

import (
	"context"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/pkg/errors"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Change describes a preference update delivered to subscribers. Remote is
// set when the update was observed from another instance through Apply.
type Change struct {
	Preferences entities.Preferences
	Key         string
	Remote      bool
}

type Store struct {
	kv     KV
	logger *slog.Logger

	mu        sync.RWMutex
	prefs     entities.Preferences
	listeners map[uint64]func(Change)
	nextID    uint64
}

type Option func(s *Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Load reads the stored preferences once. Keys that are absent, unreadable
// or hold an unknown value keep their default.
func Load(ctx context.Context, kv KV, defaults entities.Preferences, opts ...Option) *Store {
	const op = "preferences.Load"

	s := &Store{
		kv:        kv,
		logger:    slog.Default(),
		prefs:     defaults,
		listeners: make(map[uint64]func(Change)),
	}

	for _, opt := range opts {
		opt(s)
	}

	if raw, ok := s.read(ctx, entities.PrefKeyTheme); ok {
		if theme, err := entities.ParseTheme(raw); err == nil {
			s.prefs.Theme = theme
		} else {
			s.logger.Warn("ignoring stored theme", "op", op, "value", raw)
		}
	}

	if raw, ok := s.read(ctx, entities.PrefKeyLanguage); ok {
		if lang, err := entities.ParseLanguage(raw); err == nil {
			s.prefs.Language = lang
		} else {
			s.logger.Warn("ignoring stored language", "op", op, "value", raw)
		}
	}

	s.logger.Debug("preferences loaded", "op", op, "theme", s.prefs.Theme, "language", s.prefs.Language)

	return s
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	const op = "preferences.read"

	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) {
			s.logger.Warn("failed to read preference", "op", op, "key", key, "error", err)
		}
		return "", false
	}

	return raw, true
}

func (s *Store) Get() entities.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prefs
}

func (s *Store) SetTheme(ctx context.Context, theme entities.Theme) error {
	const op = "preferences.SetTheme"

	if _, err := entities.ParseTheme(string(theme)); err != nil {
		return errors.Wrap(err, op)
	}

	if err := s.set(ctx, entities.PrefKeyTheme, string(theme)); err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

func (s *Store) SetLanguage(ctx context.Context, lang entities.Language) error {
	const op = "preferences.SetLanguage"

	if _, err := entities.ParseLanguage(string(lang)); err != nil {
		return errors.Wrap(err, op)
	}

	if err := s.set(ctx, entities.PrefKeyLanguage, string(lang)); err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (entities.Theme, error) {
	const op = "preferences.ToggleTheme"

	next := s.Get().Theme.Toggle()

	if err := s.set(ctx, entities.PrefKeyTheme, string(next)); err != nil {
		return "", errors.Wrap(err, op)
	}

	return next, nil
}

// set persists first. Memory and subscribers only see values the KV accepted.
func (s *Store) set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, key, value); err != nil {
		return err
	}

	s.update(key, value, false)

	return nil
}

// Apply takes a value written by another instance. It does not write back to
// the KV, and an unchanged value notifies nobody.
func (s *Store) Apply(key, value string) error {
	const op = "preferences.Apply"

	switch key {
	case entities.PrefKeyTheme:
		theme, err := entities.ParseTheme(value)
		if err != nil {
			return errors.Wrap(err, op)
		}
		value = string(theme)
	case entities.PrefKeyLanguage:
		lang, err := entities.ParseLanguage(value)
		if err != nil {
			return errors.Wrap(err, op)
		}
		value = string(lang)
	default:
		return errors.Wrapf(entities.ErrNotFound, "%s: preference %q", op, key)
	}

	s.update(key, value, true)

	return nil
}

func (s *Store) update(key, value string, remote bool) {
	s.mu.Lock()

	next := s.prefs
	switch key {
	case entities.PrefKeyTheme:
		next.Theme = entities.Theme(value)
	case entities.PrefKeyLanguage:
		next.Language = entities.Language(value)
	}

	if next == s.prefs {
		s.mu.Unlock()
		return
	}

	s.prefs = next
	listeners := slices.Collect(maps.Values(s.listeners))
	s.mu.Unlock()

	change := Change{Preferences: next, Key: key, Remote: remote}
	for _, fn := range listeners {
		fn(change)
	}
}

// Subscribe registers fn for every future change. Listeners run on the
// goroutine that made the change, after the store lock is released.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.listeners, id)
	}
}
