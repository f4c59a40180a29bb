package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/app"
	"github.com/abhisek/countdrill/internal/audio"
	"github.com/abhisek/countdrill/internal/config"
	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/store"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// backend is an opened key-value store and its settings.
type backend struct {
	settings config.Settings
	kv       store.KV
	close    func() error
}

func (b *backend) Close() {
	if err := b.close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: close store: %v\n", err)
	}
}

// openBackend resolves settings and opens the configured store.
func openBackend(cmd *cobra.Command) (*backend, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	kv, closeFn, err := openKV(cmd.Context(), s)
	if err != nil {
		return nil, err
	}
	return &backend{settings: s, kv: kv, close: closeFn}, nil
}

func openKV(ctx context.Context, s config.Settings) (store.KV, func() error, error) {
	if s.Backend == config.BackendRedis {
		r, err := store.OpenRedis(ctx, s.RedisAddr, s.RedisPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		return r, r.Close, nil
	}

	path := s.DB
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, st.Close, nil
}

// loadLedger reads the history ledger, reporting problems on stderr.
func loadLedger(cmd *cobra.Command, kv store.KV) *history.Ledger {
	return history.Load(cmd.Context(), kv, history.WithWarnings(cmd.ErrOrStderr()))
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, opts app.Options) error {
	b, err := openBackend(cmd)
	if err != nil {
		return err
	}
	defer b.Close()

	opts.KV = b.kv
	opts.Ledger = loadLedger(cmd, b.kv)
	opts.Generator = taskgen.New(nil, taskgen.DefaultConfig())
	if b.settings.Bell {
		opts.Cues = audio.NewBell(os.Stderr)
	}

	return app.Run(cmd.Context(), opts)
}
