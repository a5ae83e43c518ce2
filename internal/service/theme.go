package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"catboard/internal/cache"
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/logger"
)

// ThemeService resolves and switches the app color scheme. An explicit
// Change persists the choice; the OS preference is only applied when no
// choice was ever persisted, and is never persisted itself.
type ThemeService interface {
	Current(ctx context.Context) (*dto.ThemeResponse, error)
	Change(ctx context.Context, theme string) (*dto.ThemeResponse, error)
	Toggle(ctx context.Context) (*dto.ThemeResponse, error)
	SyncSystemPreference(ctx context.Context, prefersDark bool) (*dto.ThemeResponse, error)
	Subscribe() <-chan domain.ThemeChange
}

type themeServiceImpl struct {
	cacheStore domain.Cache
	storageKey string

	mu     sync.Mutex
	active string
	subs   []chan domain.ThemeChange
}

// NewThemeService creates a ThemeService persisting the explicit choice
// under storageKey. The in-memory active theme starts at the persisted
// value, or the default when none was stored.
func NewThemeService(ctx context.Context, cacheStore domain.Cache, storageKey string) ThemeService {
	s := &themeServiceImpl{
		cacheStore: cacheStore,
		storageKey: storageKey,
		active:     domain.ThemeDefault,
	}
	if stored, ok := s.persisted(ctx); ok {
		s.active = stored
	}
	return s
}

func (s *themeServiceImpl) storageCacheKey() string {
	return cache.GenerateCacheKey("theme", "tag", s.storageKey)
}

// persisted reads the stored theme tag. Unknown stored tags are treated
// as absent so a stale tag cannot wedge the UI.
func (s *themeServiceImpl) persisted(ctx context.Context) (string, bool) {
	stored, err := s.cacheStore.Get(ctx, s.storageCacheKey())
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("failed to read persisted theme", zap.Error(err))
		}
		return "", false
	}
	if !knownTheme(stored) {
		logger.Get().Warn("ignoring unknown persisted theme", zap.String("theme", stored))
		return "", false
	}
	return stored, true
}

func knownTheme(theme string) bool {
	for _, known := range domain.KnownThemes {
		if theme == known {
			return true
		}
	}
	return false
}

func (s *themeServiceImpl) Current(ctx context.Context) (*dto.ThemeResponse, error) {
	_, persisted := s.persisted(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return &dto.ThemeResponse{Theme: s.active, Persisted: persisted}, nil
}

// Change applies and persists an explicit theme choice, then notifies
// subscribers. Unknown tags are rejected without touching the state.
func (s *themeServiceImpl) Change(ctx context.Context, theme string) (*dto.ThemeResponse, error) {
	if !knownTheme(theme) {
		return nil, domain.NewInvalidInputError("unknown theme: " + theme)
	}

	if err := s.cacheStore.Set(ctx, s.storageCacheKey(), theme, 0); err != nil {
		return nil, domain.NewInternalError("failed to persist theme", err)
	}

	s.apply(theme)
	return &dto.ThemeResponse{Theme: theme, Persisted: true}, nil
}

// Toggle is the quick dark/light switch: any dark scheme flips to
// light mode, anything else flips back to the default dark scheme. It
// counts as an explicit choice and persists like Change.
func (s *themeServiceImpl) Toggle(ctx context.Context) (*dto.ThemeResponse, error) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	target := domain.ThemeDefault
	if domain.IsDarkTheme(active) {
		target = domain.ThemeLightMode
	}
	return s.Change(ctx, target)
}

// SyncSystemPreference applies the OS color scheme when the user never
// made an explicit choice. It does not persist: only Change does, so an
// OS flip before any choice still tracks future flips.
func (s *themeServiceImpl) SyncSystemPreference(ctx context.Context, prefersDark bool) (*dto.ThemeResponse, error) {
	if _, ok := s.persisted(ctx); ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		return &dto.ThemeResponse{Theme: s.active, Persisted: true}, nil
	}

	theme := domain.ThemeLightMode
	if prefersDark {
		theme = domain.ThemeDefault
	}
	s.apply(theme)
	return &dto.ThemeResponse{Theme: theme, Persisted: false}, nil
}

// Subscribe returns a channel receiving every applied theme change.
// Slow subscribers miss notifications instead of blocking the switch.
func (s *themeServiceImpl) Subscribe() <-chan domain.ThemeChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan domain.ThemeChange, 8)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *themeServiceImpl) apply(theme string) {
	s.mu.Lock()
	changed := s.active != theme
	s.active = theme
	subs := s.subs
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, ch := range subs {
		select {
		case ch <- domain.ThemeChange{Theme: theme}:
		default:
		}
	}
}
