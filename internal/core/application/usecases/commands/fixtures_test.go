package commands_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"tracker/internal/adapters/out/memstore"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []ports.Event
}

func (p *capturePublisher) Publish(_ context.Context, event ports.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturePublisher) Events() []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.Event(nil), p.events...)
}

func (p *capturePublisher) Kinds() []ports.EventKind {
	kinds := make([]ports.EventKind, 0)
	for _, e := range p.Events() {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

// seededStore returns a store loaded with the demo data set.
func seededStore(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	require.NoError(t, memstore.Seed(context.Background(), store))
	return store
}

func createOrderCommand(t *testing.T, vendorID, customerID kernel.ID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(vendorID, customerID,
		[]commands.ItemSpec{
			{Name: "Pad Thai", Quantity: 2, Price: 11.50},
			{Name: "Spring Rolls", Quantity: 1, Price: 5.00},
		},
		"123 Food Street, Downtown", "789 Residential Lane, Suburb",
		mustGeoPoint(t, 40.7589, -73.9851), mustGeoPoint(t, 40.7505, -73.9934),
		// Above the 28.0 item sum: the vendor's total includes fees.
		31.50,
		"John Doe", "+1-555-0301")
	require.NoError(t, err)
	return cmd
}
