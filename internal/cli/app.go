package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haakusi/momentum/internal/adapters/jsonfile"
	"github.com/haakusi/momentum/internal/adapters/markdown"
	"github.com/haakusi/momentum/internal/adapters/otel"
	"github.com/haakusi/momentum/internal/infrastructure/config"
	"github.com/haakusi/momentum/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config    *config.App
	Clock     func() time.Time
	StatsRepo ports.StatsRepository
	Logs      ports.LogWriter
	Metrics   ports.MetricsExporter
}

// NewAppContext creates an AppContext with all dependencies initialized.
// The metrics exporter degrades to a no-op when disabled or unreachable.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", cfg.Timezone, err)
	}

	var metrics ports.MetricsExporter = otel.NewNoOpExporter()
	if otelCfg := otel.LoadConfig(); otelCfg.Enabled {
		exporter, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: metrics exporter disabled: %v\n", err)
		} else {
			metrics = exporter
		}
	}

	return &AppContext{
		Config:    cfg,
		Clock:     func() time.Time { return time.Now().In(loc) },
		StatsRepo: jsonfile.NewRepository(filepath.Join(cfg.DataDir, "logs", "stats.json")),
		Logs:      markdown.NewWriter(cfg.DataDir),
		Metrics:   metrics,
	}, nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	if a.Metrics != nil {
		return a.Metrics.Close(ctx)
	}
	return nil
}
