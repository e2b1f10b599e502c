package http

import (
	"time"

	"tracker/internal/core/domain/model/account"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
)

// Error is the uniform error envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is the wire form of a position report.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
}

// OrderItem is the wire form of one order line item.
type OrderItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Order is the wire form of an order. Coordinates are [latitude,
// longitude] pairs.
type Order struct {
	ID                    string      `json:"id"`
	VendorID              string      `json:"vendorId"`
	CustomerID            string      `json:"customerId"`
	DeliveryPartnerID     *string     `json:"deliveryPartnerId,omitempty"`
	Items                 []OrderItem `json:"items"`
	Status                string      `json:"status"`
	PickupAddress         string      `json:"pickupAddress"`
	DeliveryAddress       string      `json:"deliveryAddress"`
	PickupCoordinates     [2]float64  `json:"pickupCoordinates"`
	DeliveryCoordinates   [2]float64  `json:"deliveryCoordinates"`
	TotalAmount           float64     `json:"totalAmount"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
	EstimatedDeliveryTime *time.Time  `json:"estimatedDeliveryTime,omitempty"`
	CustomerName          string      `json:"customerName"`
	CustomerPhone         string      `json:"customerPhone"`
}

// Vendor is the wire form of a vendor account.
type Vendor struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	BusinessName string    `json:"businessName"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DeliveryPartner is the wire form of a partner account.
type DeliveryPartner struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Phone           string    `json:"phone,omitempty"`
	VehicleType     string    `json:"vehicleType,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	Rating          float64   `json:"rating"`
	CurrentLocation *Location `json:"currentLocation,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Customer is the wire form of a customer account.
type Customer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TrackResponse is the customer tracking view: the order plus the
// freshest known courier position, or null before the first report.
type TrackResponse struct {
	Order           Order     `json:"order"`
	CurrentLocation *Location `json:"currentLocation"`
}

// LoginRequest is the session start request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse carries the authenticated user and the session token
// also set as an httpOnly cookie.
type LoginResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// CreateVendorRequest registers a vendor account.
type CreateVendorRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// CreatePartnerRequest registers a delivery partner account.
type CreatePartnerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
}

// AvailabilityRequest toggles a partner's availability.
type AvailabilityRequest struct {
	DeliveryPartnerID string `json:"deliveryPartnerId"`
	IsAvailable       bool   `json:"isAvailable"`
}

// AssignRequest assigns a partner to an order.
type AssignRequest struct {
	OrderID           string `json:"orderId"`
	DeliveryPartnerID string `json:"deliveryPartnerId"`
}

// StatusRequest moves an order to a new status.
type StatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// CreateOrderItemRequest is one line item of an order creation request.
type CreateOrderItemRequest struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CreateOrderRequest creates an order for the authenticated vendor.
type CreateOrderRequest struct {
	CustomerID          string                   `json:"customerId"`
	Items               []CreateOrderItemRequest `json:"items"`
	PickupAddress       string                   `json:"pickupAddress"`
	DeliveryAddress     string                   `json:"deliveryAddress"`
	PickupCoordinates   [2]float64               `json:"pickupCoordinates"`
	DeliveryCoordinates [2]float64               `json:"deliveryCoordinates"`
	TotalAmount         float64                  `json:"totalAmount"`
	CustomerName        string                   `json:"customerName"`
	CustomerPhone       string                   `json:"customerPhone"`
}

// LocationUpdateRequest is a partner's position report.
type LocationUpdateRequest struct {
	OrderID           string   `json:"orderId"`
	DeliveryPartnerID string   `json:"deliveryPartnerId"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Timestamp         *string  `json:"timestamp,omitempty"`
	Accuracy          *float64 `json:"accuracy,omitempty"`
}

// SuccessResponse acknowledges a write without a richer body.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// OrderToDTO maps an order snapshot to its wire form.
func OrderToDTO(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ID:          item.ID().String(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			Description: item.Description(),
		})
	}

	dto := Order{
		ID:                    o.ID().String(),
		VendorID:              o.VendorID().String(),
		CustomerID:            o.CustomerID().String(),
		Items:                 items,
		Status:                o.Status().String(),
		PickupAddress:         o.PickupAddress(),
		DeliveryAddress:       o.DeliveryAddress(),
		PickupCoordinates:     pointToPair(o.PickupPoint()),
		DeliveryCoordinates:   pointToPair(o.DeliveryPoint()),
		TotalAmount:           o.TotalAmount(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		EstimatedDeliveryTime: o.EstimatedDelivery(),
		CustomerName:          o.CustomerName(),
		CustomerPhone:         o.CustomerPhone(),
	}
	if partnerID := o.DeliveryPartnerID(); partnerID != nil {
		id := partnerID.String()
		dto.DeliveryPartnerID = &id
	}
	return dto
}

// SampleToDTO maps a location sample to its wire form.
func SampleToDTO(sample location.Sample) Location {
	return Location{
		Latitude:  sample.Point().Latitude(),
		Longitude: sample.Point().Longitude(),
		Timestamp: sample.Timestamp(),
		Accuracy:  sample.Accuracy(),
	}
}

// VendorToDTO maps a vendor snapshot to its wire form.
func VendorToDTO(v *account.Vendor) Vendor {
	return Vendor{
		ID:           v.ID().String(),
		Email:        v.Email(),
		Name:         v.Name(),
		Role:         v.Role().String(),
		BusinessName: v.BusinessName(),
		Address:      v.Address(),
		Phone:        v.Phone(),
		CreatedAt:    v.CreatedAt(),
	}
}

// PartnerToDTO maps a partner snapshot to its wire form.
func PartnerToDTO(p *partner.DeliveryPartner) DeliveryPartner {
	dto := DeliveryPartner{
		ID:          p.ID().String(),
		Email:       p.Email(),
		Name:        p.Name(),
		Role:        p.Role().String(),
		Phone:       p.Phone(),
		VehicleType: p.VehicleType(),
		IsAvailable: p.IsAvailable(),
		Rating:      p.Rating(),
		CreatedAt:   p.CreatedAt(),
	}
	if point, at := p.LastKnownPosition(); point != nil {
		dto.CurrentLocation = &Location{
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
			Timestamp: at,
		}
	}
	return dto
}

// CustomerToDTO maps a customer snapshot to its wire form.
func CustomerToDTO(c *account.Customer) Customer {
	return Customer{
		ID:        c.ID().String(),
		Email:     c.Email(),
		Name:      c.Name(),
		Role:      c.Role().String(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
	}
}

func pointToPair(point kernel.GeoPoint) [2]float64 {
	return [2]float64{point.Latitude(), point.Longitude()}
}
