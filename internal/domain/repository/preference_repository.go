package repository

import "context"

// PreferenceRepository defines the interface for the persisted client
// preferences. One key exists today: the display locale.
type PreferenceRepository interface {
	// GetLang returns the stored locale, or "" when none was ever stored.
	GetLang(ctx context.Context) (string, error)
	SetLang(ctx context.Context, lang string) error
}
