package repository

import (
	"context"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
)

const langKey = "receiptLang"

type preferenceRepository struct {
	mu sync.Mutex
	v  *viper.Viper
}

// NewPreferenceRepository creates a file-backed preference store. The file
// may be absent on first run; it is created on the first write.
func NewPreferenceRepository(path string) (repository.PreferenceRepository, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return &preferenceRepository{v: v}, nil
}

func (r *preferenceRepository) GetLang(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.v.GetString(langKey), nil
}

func (r *preferenceRepository) SetLang(ctx context.Context, lang string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.v.Set(langKey, lang)
	return r.v.WriteConfig()
}
