package credential

import (
	"context"
	"strings"

	"github.com/spf13/viper"
)

// EnvStore reads credentials from the environment. Static values from the
// config file act as defaults that the environment overrides.
type EnvStore struct {
	v *viper.Viper
}

// NewEnvStore creates a read-only store. With prefix "AITASKER", the
// credential "openai_api_key" is read from AITASKER_OPENAI_API_KEY.
func NewEnvStore(prefix string, static map[string]string) *EnvStore {
	v := viper.New()
	if prefix != "" {
		v.SetEnvPrefix(prefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, value := range static {
		if value = strings.TrimSpace(value); value != "" {
			v.SetDefault(normalizeName(name), value)
		}
	}
	return &EnvStore{v: v}
}

func (s *EnvStore) Get(ctx context.Context, name string) (string, error) {
	key := normalizeName(name)
	if key == "" {
		return "", ErrEmptyName
	}
	value := strings.TrimSpace(s.v.GetString(key))
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *EnvStore) Set(ctx context.Context, name, value string) error {
	return ErrReadOnly
}

func (s *EnvStore) Delete(ctx context.Context, name string) error {
	return ErrReadOnly
}
