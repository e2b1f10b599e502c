package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tracker/internal/auth"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
)

// GetVendorOrders handles GET /orders/vendor?vendorId=.
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	vendorID := ctx.QueryParam("vendorId")
	if vendorID == "" {
		return writeError(ctx, http.StatusBadRequest, "vendorId is required")
	}

	query, err := queries.NewGetVendorOrdersQuery(kernel.ID(vendorID))
	if err != nil {
		return respondError(ctx, err)
	}
	orders, err := s.vendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersToDTO(orders))
}

// GetPartnerOrders handles GET /orders/delivery?deliveryPartnerId=.
func (s *Server) GetPartnerOrders(ctx echo.Context) error {
	partnerID := ctx.QueryParam("deliveryPartnerId")
	if partnerID == "" {
		return writeError(ctx, http.StatusBadRequest, "deliveryPartnerId is required")
	}

	query, err := queries.NewGetPartnerOrdersQuery(kernel.ID(partnerID))
	if err != nil {
		return respondError(ctx, err)
	}
	orders, err := s.partnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersToDTO(orders))
}

// CreateOrder handles POST /orders. The vendor id is the authenticated
// caller's, never trusted from the body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	principal, _ := auth.PrincipalFromContext(ctx.Request().Context())
	if principal == nil {
		return writeError(ctx, http.StatusUnauthorized, "missing session token")
	}

	pickupPoint, err := kernel.NewGeoPoint(request.PickupCoordinates[0], request.PickupCoordinates[1])
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryPoint, err := kernel.NewGeoPoint(request.DeliveryCoordinates[0], request.DeliveryCoordinates[1])
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.ItemSpec, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemSpec{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Description: item.Description,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(principal.ID, kernel.ID(request.CustomerID),
		items, request.PickupAddress, request.DeliveryAddress,
		pickupPoint, deliveryPoint, request.TotalAmount,
		request.CustomerName, request.CustomerPhone)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	created, err := s.orders.Get(ctx.Request().Context(), cmd.OrderID())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, OrderToDTO(created))
}

// AssignOrder handles POST /orders/assign. Vendors may only assign
// partners to their own orders.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var request AssignRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := s.orders.Get(ctx.Request().Context(), kernel.ID(request.OrderID))
	if err != nil {
		return respondError(ctx, err)
	}
	principal, _ := auth.PrincipalFromContext(ctx.Request().Context())
	if principal == nil || target.VendorID() != principal.ID {
		return writeError(ctx, http.StatusUnauthorized, "order belongs to another vendor")
	}

	cmd, err := commands.NewAssignPartnerCommand(kernel.ID(request.OrderID), kernel.ID(request.DeliveryPartnerID))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.orders.Get(ctx.Request().Context(), cmd.OrderID())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderToDTO(updated))
}

// ChangeOrderStatus handles POST /orders/status. A vendor may move its
// own orders; a partner may move orders assigned to it.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var request StatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := s.orders.Get(ctx.Request().Context(), kernel.ID(request.OrderID))
	if err != nil {
		return respondError(ctx, err)
	}
	if !callerOwnsOrder(ctx, target) {
		return writeError(ctx, http.StatusUnauthorized, "order belongs to another account")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.ID(request.OrderID), order.Status(request.Status))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.orders.Get(ctx.Request().Context(), cmd.OrderID())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderToDTO(updated))
}

// TrackOrder handles GET /orders/:id/track, the public tracking view.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(kernel.ID(ctx.Param("id")))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := TrackResponse{Order: OrderToDTO(view.Order)}
	if view.LastLocation != nil {
		sample := SampleToDTO(*view.LastLocation)
		response.CurrentLocation = &sample
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateLocation handles POST /location/update. Partners may only
// report positions as themselves; a missing timestamp defaults to the
// server's clock.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	var request LocationUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	principal, _ := auth.PrincipalFromContext(ctx.Request().Context())
	if principal == nil || principal.ID.String() != request.DeliveryPartnerID {
		return writeError(ctx, http.StatusUnauthorized, "cannot report positions for another partner")
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	timestamp := time.Now().UTC()
	if request.Timestamp != nil {
		parsed, parseErr := time.Parse(time.RFC3339, *request.Timestamp)
		if parseErr != nil {
			return writeError(ctx, http.StatusBadRequest, "timestamp must be RFC 3339")
		}
		timestamp = parsed
	}

	cmd, err := commands.NewRecordLocationCommand(kernel.ID(request.OrderID),
		kernel.ID(request.DeliveryPartnerID), point, timestamp, request.Accuracy)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.recordLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func callerOwnsOrder(ctx echo.Context, target *order.Order) bool {
	principal, ok := auth.PrincipalFromContext(ctx.Request().Context())
	if !ok {
		return false
	}

	switch principal.Role {
	case kernel.RoleVendor:
		return target.VendorID() == principal.ID
	case kernel.RoleDelivery:
		partnerID := target.DeliveryPartnerID()
		return partnerID != nil && *partnerID == principal.ID
	default:
		return false
	}
}

func ordersToDTO(orders []*order.Order) []Order {
	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderToDTO(o))
	}
	return response
}
