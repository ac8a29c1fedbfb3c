package public

import (
	"context"
	"github.com/langowen/fxdash/internal/dashboard/session"
	"github.com/langowen/fxdash/internal/entities"
)

type Sessions interface {
	Create(ctx context.Context) *session.Session
	Get(id string) (*session.Session, error)
	End(id string) error
}

type Preferences interface {
	Get() entities.Preferences
	SetTheme(ctx context.Context, theme entities.Theme) error
	SetLanguage(ctx context.Context, lang entities.Language) error
	ToggleTheme(ctx context.Context) (entities.Theme, error)
}
