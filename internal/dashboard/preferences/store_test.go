package preferences

import (
	"context"
	"errors"
	"github.com/langowen/fxdash/internal/dashboard/adapter/storage/memory"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"testing"
)

type mockKV struct {
	mock.Mock
}

func (m *mockKV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockKV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func discard() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	s := Load(context.Background(), memory.NewStorage(), entities.DefaultPreferences(), discard())

	assert.Equal(t, entities.Preferences{Theme: entities.ThemeLight, Language: entities.LangEnglish}, s.Get())
}

func TestLoadStoredValues(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStorage()
	require.NoError(t, kv.Set(ctx, entities.PrefKeyTheme, "dark"))
	require.NoError(t, kv.Set(ctx, entities.PrefKeyLanguage, "fr"))

	s := Load(ctx, kv, entities.DefaultPreferences(), discard())

	assert.Equal(t, entities.Preferences{Theme: entities.ThemeDark, Language: entities.LangFrench}, s.Get())
}

func TestLoadIgnoresInvalidAndFailingReads(t *testing.T) {
	kv := &mockKV{}
	kv.On("Get", mock.Anything, entities.PrefKeyTheme).Return("sepia", nil)
	kv.On("Get", mock.Anything, entities.PrefKeyLanguage).Return("", errors.New("connection refused"))

	s := Load(context.Background(), kv, entities.Preferences{Theme: entities.ThemeDark, Language: entities.LangGerman}, discard())

	assert.Equal(t, entities.Preferences{Theme: entities.ThemeDark, Language: entities.LangGerman}, s.Get())
	kv.AssertExpectations(t)
}

func TestSetPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStorage()
	s := Load(ctx, kv, entities.DefaultPreferences(), discard())

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	require.NoError(t, s.SetLanguage(ctx, entities.LangSpanish))
	require.NoError(t, s.SetTheme(ctx, entities.ThemeDark))

	stored, err := kv.Get(ctx, entities.PrefKeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "es", stored)

	require.Len(t, changes, 2)
	assert.Equal(t, entities.PrefKeyLanguage, changes[0].Key)
	assert.Equal(t, entities.Preferences{Theme: entities.ThemeDark, Language: entities.LangSpanish}, changes[1].Preferences)
	assert.False(t, changes[1].Remote)
}

func TestSetRejectsUnknownValues(t *testing.T) {
	kv := &mockKV{}
	kv.On("Get", mock.Anything, mock.Anything).Return("", entities.ErrNotFound)

	s := Load(context.Background(), kv, entities.DefaultPreferences(), discard())

	assert.ErrorIs(t, s.SetTheme(context.Background(), "sepia"), entities.ErrUnknownTheme)
	assert.ErrorIs(t, s.SetLanguage(context.Background(), "xx"), entities.ErrUnknownLanguage)
	kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestFailedWriteLeavesValueUnchanged(t *testing.T) {
	kv := &mockKV{}
	kv.On("Get", mock.Anything, mock.Anything).Return("", entities.ErrNotFound)
	kv.On("Set", mock.Anything, entities.PrefKeyTheme, "dark").Return(errors.New("read-only replica"))

	s := Load(context.Background(), kv, entities.DefaultPreferences(), discard())

	notified := false
	s.Subscribe(func(Change) { notified = true })

	_, err := s.ToggleTheme(context.Background())
	require.Error(t, err)
	assert.Equal(t, entities.ThemeLight, s.Get().Theme)
	assert.False(t, notified)
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, memory.NewStorage(), entities.DefaultPreferences(), discard())

	theme, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeDark, theme)

	theme, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeLight, theme)
	assert.Equal(t, entities.ThemeLight, s.Get().Theme)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	kv := &mockKV{}
	kv.On("Get", mock.Anything, mock.Anything).Return("", entities.ErrNotFound)

	s := Load(ctx, kv, entities.DefaultPreferences(), discard())

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	require.NoError(t, s.Apply(entities.PrefKeyLanguage, "ru"))
	require.NoError(t, s.Apply(entities.PrefKeyLanguage, "ru"))

	assert.Equal(t, entities.LangRussian, s.Get().Language)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Remote)
	kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)

	assert.ErrorIs(t, s.Apply(entities.PrefKeyTheme, "neon"), entities.ErrUnknownTheme)
	assert.ErrorIs(t, s.Apply("font", "serif"), entities.ErrNotFound)
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, memory.NewStorage(), entities.DefaultPreferences(), discard())

	calls := 0
	unsubscribe := s.Subscribe(func(Change) { calls++ })

	_, err := s.ToggleTheme(ctx)
	require.NoError(t, err)

	unsubscribe()

	_, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
