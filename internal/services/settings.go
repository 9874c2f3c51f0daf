package services

import (
	"context"
	"fmt"
	"strings"

	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/ports"
)

// SettingsService maintains the venue and assist target lists
type SettingsService struct {
	defaults []string
	repo     ports.SettingsRepository
}

// NewSettingsService creates a new SettingsService; defaults are the built-in venues
func NewSettingsService(repo ports.SettingsRepository, defaults []string) *SettingsService {
	return &SettingsService{
		defaults: defaults,
		repo:     repo,
	}
}

// Get returns the stored settings
func (s *SettingsService) Get(ctx context.Context) domain.Settings {
	return s.repo.LoadSettings(ctx)
}

// Places returns built-in and custom venues with the reserved venue last
func (s *SettingsService) Places(ctx context.Context) []string {
	return domain.Places(s.defaults, s.repo.LoadSettings(ctx))
}

// AddPlace adds a custom venue
func (s *SettingsService) AddPlace(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return domain.ErrEmptyName
	case name == domain.OtherPlace:
		return fmt.Errorf("%w: %s", domain.ErrReservedName, name)
	}

	settings := s.repo.LoadSettings(ctx)
	if domain.Contains(domain.Places(s.defaults, settings), name) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateName, name)
	}

	settings.CustomPlaces = append(settings.CustomPlaces, name)
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to add place: %w", err)
	}
	logging.Logger.Info("Place added", "place", name)
	return nil
}

// RemovePlace removes a custom venue; built-in venues cannot be removed
func (s *SettingsService) RemovePlace(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == domain.OtherPlace || domain.Contains(s.defaults, name) {
		return fmt.Errorf("%w: %s", domain.ErrReservedName, name)
	}

	settings := s.repo.LoadSettings(ctx)
	if !domain.Contains(settings.CustomPlaces, name) {
		return fmt.Errorf("%w: %s", domain.ErrNameNotFound, name)
	}

	settings.CustomPlaces = without(settings.CustomPlaces, name)
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to remove place: %w", err)
	}
	logging.Logger.Info("Place removed", "place", name)
	return nil
}

// Targets returns the unset marker followed by the assist targets
func (s *SettingsService) Targets(ctx context.Context) []string {
	return domain.AssistTargetsWithUnset(s.repo.LoadSettings(ctx))
}

// AddTarget adds an assist target player
func (s *SettingsService) AddTarget(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return domain.ErrEmptyName
	case name == domain.UnsetTarget:
		return fmt.Errorf("%w: %s", domain.ErrReservedName, name)
	}

	settings := s.repo.LoadSettings(ctx)
	if domain.Contains(settings.AssistTargets, name) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateName, name)
	}

	settings.AssistTargets = append(settings.AssistTargets, name)
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to add target: %w", err)
	}
	logging.Logger.Info("Assist target added", "target", name)
	return nil
}

// RemoveTarget removes an assist target; a removed selection falls back to unset
func (s *SettingsService) RemoveTarget(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == domain.UnsetTarget {
		return fmt.Errorf("%w: %s", domain.ErrReservedName, name)
	}

	settings := s.repo.LoadSettings(ctx)
	if !domain.Contains(settings.AssistTargets, name) {
		return fmt.Errorf("%w: %s", domain.ErrNameNotFound, name)
	}

	settings.AssistTargets = without(settings.AssistTargets, name)
	if settings.SelectedAssistTarget == name {
		settings.SelectedAssistTarget = domain.UnsetTarget
	}
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to remove target: %w", err)
	}
	logging.Logger.Info("Assist target removed", "target", name)
	return nil
}

// SelectTarget sets the assist target preselected for new records
func (s *SettingsService) SelectTarget(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.UnsetTarget
	}

	settings := s.repo.LoadSettings(ctx)
	if name != domain.UnsetTarget && !domain.Contains(settings.AssistTargets, name) {
		return fmt.Errorf("%w: %s", domain.ErrNameNotFound, name)
	}

	settings.SelectedAssistTarget = name
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to select target: %w", err)
	}
	return nil
}

// SelectedTarget returns the preselected assist target, or unset
func (s *SettingsService) SelectedTarget(ctx context.Context) string {
	settings := s.repo.LoadSettings(ctx)
	if settings.SelectedAssistTarget == "" || !domain.Contains(settings.AssistTargets, settings.SelectedAssistTarget) {
		return domain.UnsetTarget
	}
	return settings.SelectedAssistTarget
}

func without(values []string, name string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}
