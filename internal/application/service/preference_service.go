package service

import (
	"context"

	"golang.org/x/text/language"

	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
	"github.com/receiptforge/receiptforge-api/pkg/apperror"
	"github.com/receiptforge/receiptforge-api/pkg/i18n"
)

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.Chinese,
})

// PreferenceService resolves and persists the receipt language.
type PreferenceService struct {
	prefs repository.PreferenceRepository
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(prefs repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// ResolveLang returns the effective receipt language: the persisted choice
// when one exists, otherwise the best match for the Accept-Language header,
// otherwise English. Inference is never persisted.
func (s *PreferenceService) ResolveLang(ctx context.Context, acceptLanguage string) (string, error) {
	stored, err := s.prefs.GetLang(ctx)
	if err != nil {
		return "", err
	}
	if stored != "" {
		return stored, nil
	}
	return InferLang(acceptLanguage), nil
}

// SetLang persists the receipt language choice.
func (s *PreferenceService) SetLang(ctx context.Context, lang string) error {
	if lang != i18n.LocaleEN && lang != i18n.LocaleZH {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "lang", Message: "must be one of: en, zh"},
		})
	}
	return s.prefs.SetLang(ctx, lang)
}

// InferLang maps an Accept-Language header onto a supported locale.
func InferLang(acceptLanguage string) string {
	if acceptLanguage == "" {
		return i18n.LocaleEN
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return i18n.LocaleEN
	}
	_, index, _ := localeMatcher.Match(tags...)
	if index == 1 {
		return i18n.LocaleZH
	}
	return i18n.LocaleEN
}
