package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	platformgrpc "github.com/louisbranch/tantoak/internal/platform/grpc"
	"github.com/louisbranch/tantoak/internal/platform/timeouts"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/engine"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/i18n"
	scoreboardmcp "github.com/louisbranch/tantoak/internal/services/scoreboard/mcp"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage/memory"
	scoreboardsqlite "github.com/louisbranch/tantoak/internal/services/scoreboard/storage/sqlite"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/view"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

// HealthService is the gRPC health service name reported while the engine runs.
const HealthService = "scoreboard.engine"

const defaultScoreboardDB = "data/scoreboard.db"

// RuntimeConfig controls scoreboard startup.
type RuntimeConfig struct {
	DBPath                string
	Ephemeral             bool
	DefaultCeiling        int
	ResetRoundOnGamePoint bool
	Locale                string
	// HealthPort enables the gRPC health server when positive.
	HealthPort int
	// Transport overrides the MCP stdio transport.
	Transport mcpsdk.Transport
}

func (cfg RuntimeConfig) normalized() RuntimeConfig {
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultScoreboardDB
	}
	if cfg.DefaultCeiling <= 0 {
		cfg.DefaultCeiling = domain.DefaultCeiling
	}
	return cfg
}

// Run starts the scoreboard and blocks until the MCP session ends or ctx is
// canceled. The last committed state is flushed to the store before return.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg = cfg.normalized()
	printer := i18n.Printer(i18n.ResolveTag(cfg.Locale))

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	eng := engine.New(store,
		engine.WithDefaultCeiling(cfg.DefaultCeiling),
		engine.WithLogf(log.Printf),
	)
	state, err := eng.Load(ctx)
	if err != nil {
		return fmt.Errorf("load scoreboard: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.SaveFlush)
		defer cancel()
		if closeErr := eng.Close(closeCtx); closeErr != nil {
			log.Printf("close scoreboard engine: %v", closeErr)
		}
	}()
	log.Printf("scoreboard ready: %s", view.Summary(printer, state))

	unsubscribe := eng.Subscribe(func(next domain.State) {
		log.Printf("scoreboard: %s", view.Summary(printer, next))
	})
	defer unsubscribe()

	server, err := scoreboardmcp.NewServer(eng, scoreboardmcp.Options{
		ResetRoundOnGamePoint: cfg.ResetRoundOnGamePoint,
		Printer:               printer,
	})
	if err != nil {
		return fmt.Errorf("create MCP server: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, groupCtx := errgroup.WithContext(runCtx)

	if cfg.HealthPort > 0 {
		healthServer, err := platformgrpc.ListenHealth(fmt.Sprintf(":%d", cfg.HealthPort))
		if err != nil {
			return fmt.Errorf("health port %d: %w", cfg.HealthPort, err)
		}
		healthServer.SetServing(HealthService)
		log.Printf("scoreboard health server listening at %v", healthServer.Addr())

		group.Go(healthServer.Serve)
		group.Go(func() error {
			<-groupCtx.Done()
			healthServer.Stop(timeouts.Shutdown)
			return nil
		})
	}

	group.Go(func() error {
		defer cancel()
		err := server.Serve(groupCtx, cfg.Transport)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	})

	return group.Wait()
}

func openStore(cfg RuntimeConfig) (storage.SnapshotStore, func(), error) {
	if cfg.Ephemeral {
		log.Printf("scoreboard storage: in-memory, state is lost on exit")
		return memory.New(), func() {}, nil
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create scoreboard storage dir: %w", err)
		}
	}
	store, err := scoreboardsqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open scoreboard sqlite store: %w", err)
	}
	return store, func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close scoreboard sqlite store: %v", closeErr)
		}
	}, nil
}
