package app

import (
	"context"
	"github.com/langowen/fxdash/deploy/config"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestPreferenceDefaults(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		language string
		want     entities.Preferences
	}{
		{"configured", "dark", "ru", entities.Preferences{Theme: entities.ThemeDark, Language: entities.LangRussian}},
		{"case insensitive", " Dark ", "ZH", entities.Preferences{Theme: entities.ThemeDark, Language: entities.LangChinese}},
		{"invalid falls back", "sepia", "klingon", entities.DefaultPreferences()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewDashboardApp(&config.Config{
				Preferences: config.Preferences{DefaultTheme: tt.theme, DefaultLanguage: tt.language},
			})

			assert.Equal(t, tt.want, a.preferenceDefaults())
		})
	}
}

func TestStartAndStopWithMemoryBackend(t *testing.T) {
	cfg := &config.Config{
		HTTPServer:  config.HTTPServer{Port: "0", Timeout: time.Second, IdleTimeout: time.Second},
		RateService: config.RateService{URL: "http://127.0.0.1:1/api"},
		Dashboard: config.Dashboard{
			DefaultFrom:    "USD",
			DefaultTo:      "EUR",
			DefaultAmount:  1,
			DefaultRange:   "1M",
			SessionIdleTTL: time.Minute,
			SweepInterval:  time.Minute,
		},
		Preferences: config.Preferences{Backend: BackendMemory, DefaultTheme: "light", DefaultLanguage: "en"},
		Log:         config.Log{Level: "error"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := NewDashboardApp(cfg).Start(ctx)

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
