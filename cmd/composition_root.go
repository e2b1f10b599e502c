package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpapi "tracker/internal/adapters/in/http"
	"tracker/internal/adapters/in/ws"
	"tracker/internal/adapters/out/memstore"
	"tracker/internal/auth"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/jobs"
)

// CompositionRoot wires the in-memory store, auth, the HTTP and websocket
// adapters and the background jobs into a runnable application.
type CompositionRoot struct {
	Store  *memstore.Store
	Hub    *ws.Hub
	Server *httpapi.Server
	Jobs   *jobs.JobManager
	Tokens *auth.TokenService
	logger *slog.Logger
}

// Demo accounts seeded at startup. They share the configured seed password.
var seedEmails = []string{
	"quickbites@example.com",
	"freshmart@example.com",
	"mike.rider@example.com",
	"sarah.driver@example.com",
	"alex.courier@example.com",
	"john.doe@example.com",
}

func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	store := memstore.New()
	if err := memstore.Seed(ctx, store); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	tokens, err := auth.NewTokenService(config.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	credentials := auth.NewCredentialStore()
	for _, email := range seedEmails {
		if err := credentials.Register(email, config.SeedPassword); err != nil {
			return nil, fmt.Errorf("register %s: %w", email, err)
		}
	}

	hub := ws.NewHub(logger)

	server := httpapi.NewServer(httpapi.Deps{
		Tokens:        tokens,
		Credentials:   credentials,
		SecureCookies: config.SecureCookies,

		Vendors:   store.Vendors,
		Partners:  store.Partners,
		Customers: store.Customers,
		Orders:    store.Orders,
		Locations: store.Locations,

		Publisher: hub,
	})

	dispatchHandler := commands.NewDispatchPartnerCommandHandler(store.Orders, store.Partners, hub)
	recordHandler := commands.NewRecordLocationCommandHandler(store.Locations, store.Orders, store.Partners, hub)
	statusHandler := commands.NewChangeOrderStatusCommandHandler(store.Orders, hub)
	movementHandler := commands.NewSimulateMovementCommandHandler(store.Orders, store.Partners, recordHandler, statusHandler)

	manager := jobs.NewJobManager(dispatchHandler, movementHandler, config.SimulateMovement, logger)

	return &CompositionRoot{
		Store:  store,
		Hub:    hub,
		Server: server,
		Jobs:   manager,
		Tokens: tokens,
		logger: logger,
	}, nil
}

// Close releases resources held by the application.
func (c *CompositionRoot) Close() {
	c.Jobs.StopAll()
	c.Hub.Close()
}
