package http

import (
	"github.com/labstack/echo/v4"

	"tracker/internal/auth"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// Server coordinates between HTTP handlers and the application use
// cases. Mutating routes run behind token verification plus ownership
// checks; read routes stay open so the dashboards and the tracking page
// can poll them without a session.
type Server struct {
	tokens        *auth.TokenService
	credentials   *auth.CredentialStore
	secureCookies bool

	vendors   ports.VendorRepository
	partners  ports.PartnerRepository
	customers ports.CustomerRepository
	orders    ports.OrderRepository

	createVendorHandler    commands.CreateVendorCommandHandler
	createPartnerHandler   commands.CreatePartnerCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	assignPartnerHandler   commands.AssignPartnerCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	setAvailabilityHandler commands.SetPartnerAvailabilityCommandHandler
	recordLocationHandler  commands.RecordLocationCommandHandler

	getVendorsHandler    queries.GetVendorsQueryHandler
	getPartnersHandler   queries.GetPartnersQueryHandler
	vendorOrdersHandler  queries.GetVendorOrdersQueryHandler
	partnerOrdersHandler queries.GetPartnerOrdersQueryHandler
	trackOrderHandler    queries.TrackOrderQueryHandler
}

// Deps bundles everything the server needs.
type Deps struct {
	Tokens        *auth.TokenService
	Credentials   *auth.CredentialStore
	SecureCookies bool

	Vendors   ports.VendorRepository
	Partners  ports.PartnerRepository
	Customers ports.CustomerRepository
	Orders    ports.OrderRepository
	Locations ports.LocationRepository

	Publisher ports.EventPublisher
}

// NewServer creates the HTTP server and wires its use case handlers
// from the given dependencies.
func NewServer(deps Deps) *Server {
	return &Server{
		tokens:        deps.Tokens,
		credentials:   deps.Credentials,
		secureCookies: deps.SecureCookies,

		vendors:   deps.Vendors,
		partners:  deps.Partners,
		customers: deps.Customers,
		orders:    deps.Orders,

		createVendorHandler:    commands.NewCreateVendorCommandHandler(deps.Vendors),
		createPartnerHandler:   commands.NewCreatePartnerCommandHandler(deps.Partners),
		createOrderHandler:     commands.NewCreateOrderCommandHandler(deps.Orders, deps.Vendors, deps.Customers, deps.Publisher),
		assignPartnerHandler:   commands.NewAssignPartnerCommandHandler(deps.Orders, deps.Partners, deps.Publisher),
		changeStatusHandler:    commands.NewChangeOrderStatusCommandHandler(deps.Orders, deps.Publisher),
		setAvailabilityHandler: commands.NewSetPartnerAvailabilityCommandHandler(deps.Partners),
		recordLocationHandler:  commands.NewRecordLocationCommandHandler(deps.Locations, deps.Orders, deps.Partners, deps.Publisher),

		getVendorsHandler:    queries.NewGetVendorsQueryHandler(deps.Vendors),
		getPartnersHandler:   queries.NewGetPartnersQueryHandler(deps.Partners),
		vendorOrdersHandler:  queries.NewGetVendorOrdersQueryHandler(deps.Orders),
		partnerOrdersHandler: queries.NewGetPartnerOrdersQueryHandler(deps.Orders),
		trackOrderHandler:    queries.NewTrackOrderQueryHandler(deps.Orders, deps.Locations),
	}
}

// RegisterRoutes attaches every handler to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	authn := Authenticate(s.tokens)

	e.GET("/health", s.Health)
	e.POST("/login", s.Login)

	e.GET("/vendors", s.GetVendors)
	e.POST("/vendors", s.CreateVendor)

	e.GET("/delivery-partners", s.GetDeliveryPartners)
	e.POST("/delivery-partners", s.CreateDeliveryPartner)
	e.GET("/delivery-partners/available", s.GetAvailableDeliveryPartners)
	e.POST("/delivery-partners/availability", s.SetAvailability,
		authn, RequireRole(kernel.RoleDelivery))

	e.GET("/orders/vendor", s.GetVendorOrders)
	e.GET("/orders/delivery", s.GetPartnerOrders)
	e.POST("/orders", s.CreateOrder, authn, RequireRole(kernel.RoleVendor))
	e.POST("/orders/assign", s.AssignOrder, authn, RequireRole(kernel.RoleVendor))
	e.POST("/orders/status", s.ChangeOrderStatus,
		authn, RequireRole(kernel.RoleVendor, kernel.RoleDelivery))
	e.GET("/orders/:id/track", s.TrackOrder)

	e.POST("/location/update", s.UpdateLocation, authn, RequireRole(kernel.RoleDelivery))
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{"status": "ok"})
}
