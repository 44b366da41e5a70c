package credential_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-tasker/pkg/credential"
)

// countingStore records how often Get reaches it.
type countingStore struct {
	credential.Store
	gets int
}

func (s *countingStore) Get(ctx context.Context, name string) (string, error) {
	s.gets++
	return s.Store.Get(ctx, name)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := credential.NewMemoryStore()

	if _, err := s.Get(ctx, "openai_api_key"); !errors.Is(err, credential.ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "OPENAI_API_KEY", "  sk-123 "); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := s.Get(ctx, "openai_api_key")
	if err != nil || got != "sk-123" {
		t.Fatalf("Get() = %q, %v; want sk-123", got, err)
	}

	if err := s.Set(ctx, "openai_api_key", " "); err != nil {
		t.Fatalf("Set(blank) error: %v", err)
	}
	if _, err := s.Get(ctx, "openai_api_key"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("blank Set should clear the credential, got %v", err)
	}

	if err := s.Set(ctx, " ", "x"); !errors.Is(err, credential.ErrEmptyName) {
		t.Errorf("Set() with empty name error = %v, want ErrEmptyName", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestEnvStore(t *testing.T) {
	ctx := context.Background()
	t.Setenv("AITASKER_TEST_DEEPSEEK_API_KEY", "from-env")

	s := credential.NewEnvStore("AITASKER_TEST", map[string]string{
		"deepseek_api_key": "from-config",
		"qwen_api_key":     "qwen-from-config",
		"blank_api_key":    "   ",
	})

	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: "deepseek_api_key", want: "from-env"},
		{name: "QWEN_API_KEY", want: "qwen-from-config"},
		{name: "blank_api_key", wantErr: credential.ErrNotFound},
		{name: "gemini_api_key", wantErr: credential.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Get(ctx, tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Get() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}

	if err := s.Set(ctx, "x", "y"); !errors.Is(err, credential.ErrReadOnly) {
		t.Errorf("Set() error = %v, want ErrReadOnly", err)
	}
	if err := s.Delete(ctx, "x"); !errors.Is(err, credential.ErrReadOnly) {
		t.Errorf("Delete() error = %v, want ErrReadOnly", err)
	}
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: credential.NewMemoryStore()}
	s := credential.NewCachedStore(inner, 8, time.Minute)

	if _, err := s.Get(ctx, "k"); !errors.Is(err, credential.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if got, err := s.Get(ctx, "k"); err != nil || got != "v1" {
			t.Fatalf("Get() = %q, %v; want v1", got, err)
		}
	}
	// one miss before Set, one fill after it
	if inner.gets != 2 {
		t.Errorf("inner gets = %d, want 2", inner.gets)
	}

	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got, _ := s.Get(ctx, "k"); got != "v2" {
		t.Errorf("Get() after Set = %q, want v2", got)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}

func TestCachedStore_Expires(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: credential.NewMemoryStore()}
	_ = inner.Set(ctx, "k", "v")
	s := credential.NewCachedStore(inner, 8, 20*time.Millisecond)

	_, _ = s.Get(ctx, "k")
	time.Sleep(60 * time.Millisecond)
	_, _ = s.Get(ctx, "k")

	if inner.gets != 2 {
		t.Errorf("inner gets = %d, want 2 after expiry", inner.gets)
	}
}

func TestChainStore(t *testing.T) {
	ctx := context.Background()
	t.Setenv("AITASKER_CHAIN_OPENAI_API_KEY", "env-key")

	mem := credential.NewMemoryStore()
	s := credential.NewChainStore(mem, credential.NewEnvStore("AITASKER_CHAIN", nil))

	if got, err := s.Get(ctx, "openai_api_key"); err != nil || got != "env-key" {
		t.Fatalf("Get() = %q, %v; want env-key", got, err)
	}

	if err := s.Set(ctx, "openai_api_key", "override"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got, _ := s.Get(ctx, "openai_api_key"); got != "override" {
		t.Errorf("Get() = %q, want override", got)
	}

	if err := s.Delete(ctx, "openai_api_key"); !errors.Is(err, credential.ErrStillProvided) {
		t.Fatalf("Delete() error = %v, want ErrStillProvided", err)
	}
	if _, err := mem.Get(ctx, "openai_api_key"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("memory copy survived Delete: %v", err)
	}
	if got, _ := s.Get(ctx, "openai_api_key"); got != "env-key" {
		t.Errorf("Get() after Delete = %q, want env-key", got)
	}

	if err := s.Set(ctx, "qwen_api_key", "runtime"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Delete(ctx, "qwen_api_key"); err != nil {
		t.Errorf("Delete() of memory-only key error: %v", err)
	}
	if err := s.Delete(ctx, "qwen_api_key"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	readOnly := credential.NewChainStore(credential.NewEnvStore("", nil))
	if err := readOnly.Set(ctx, "k", "v"); !errors.Is(err, credential.ErrReadOnly) {
		t.Errorf("Set() on read-only chain error = %v, want ErrReadOnly", err)
	}
}
