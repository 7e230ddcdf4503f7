package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/valkey-io/valkey-go"
)

// ValkeyStore keeps each prompt as a string value under Prefix+name.
type ValkeyStore struct {
	Client valkey.Client
	Prefix string
}

func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	return &ValkeyStore{Client: client, Prefix: prefix}
}

func (s *ValkeyStore) key(name string) (string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return "", err
	}
	return s.Prefix + name, nil
}

func (s *ValkeyStore) Load(ctx context.Context, name string) (string, error) {
	key, err := s.key(name)
	if err != nil {
		return "", err
	}

	text, err := s.Client.Do(ctx, s.Client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("[ValkeyStore] failed to get %s: %w", key, err)
	}

	slog.Debug("[ValkeyStore] Loaded prompt", slog.String("key", key))
	return text, nil
}

func (s *ValkeyStore) Save(ctx context.Context, name string, text string) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	if err := s.Client.Do(ctx, s.Client.B().Set().Key(key).Value(text).Build()).Error(); err != nil {
		return fmt.Errorf("[ValkeyStore] failed to set %s: %w", key, err)
	}

	slog.Debug("[ValkeyStore] Saved prompt", slog.String("key", key))
	return nil
}
