package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

type ValkeyOptions struct {
	Address  string
	Password string
	UseTLS   bool
}

// NewValkeyClient connects and pings, retrying the ping up to MAX_RETRIES
// times before giving up.
func NewValkeyClient(ctx context.Context, o ValkeyOptions) (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			o.Address,
		},
		Password:         o.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if o.UseTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	backoff := INITIAL_BACKOFF
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = client.Do(pingCtx, client.B().Ping().Build()).Error()
		cancel()
		if err == nil {
			break
		}
		if attempt >= MAX_RETRIES {
			client.Close()
			return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
		}

		slog.Warn("[ValkeyClient] Ping failed, retrying...",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			client.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, MAX_BACKOFF)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", o.Address))
	return client, nil
}
