package memstore

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/account"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
)

// Seed loads the demo data set: two vendors, three delivery partners,
// one customer, three orders in different lifecycle stages and one
// location sample for the in-transit order. The readable ids are part of
// the demo contract, the dashboards link to them directly.
func Seed(ctx context.Context, store *Store) error {
	now := time.Now().UTC()

	vendors := []*account.Vendor{
		mustVendor("vendor-1", "quickbites@example.com", "Quick Bites Restaurant",
			"Quick Bites", "123 Food Street, Downtown", "+1-555-0101", now),
		mustVendor("vendor-2", "freshmart@example.com", "Fresh Mart Grocery",
			"Fresh Mart", "456 Market Avenue, Uptown", "+1-555-0102", now),
	}
	for _, v := range vendors {
		if err := store.Vendors.Add(ctx, v); err != nil {
			return err
		}
	}

	partners := []*partner.DeliveryPartner{
		mustPartner("delivery-1", "mike.rider@example.com", "Mike Johnson", "+1-555-0201", "motorcycle", true, 4.8, now),
		mustPartner("delivery-2", "sarah.driver@example.com", "Sarah Wilson", "+1-555-0202", "bicycle", true, 4.9, now),
		mustPartner("delivery-3", "alex.courier@example.com", "Alex Chen", "+1-555-0203", "car", false, 4.7, now),
	}
	for _, p := range partners {
		if err := store.Partners.Add(ctx, p); err != nil {
			return err
		}
	}

	customer, err := account.RestoreCustomer("customer-1", "john.doe@example.com", "John Doe",
		"+1-555-0301", "789 Residential Lane, Suburb", now)
	if err != nil {
		return err
	}
	if err = store.Customers.Add(ctx, customer); err != nil {
		return err
	}

	if err = seedOrders(ctx, store, now); err != nil {
		return err
	}

	point, err := kernel.NewGeoPoint(40.758, -73.9855)
	if err != nil {
		return err
	}
	accuracy := 5.0
	sample, err := location.NewSample("order-1", "delivery-1", point, now, &accuracy)
	if err != nil {
		return err
	}
	return store.Locations.Append(ctx, sample)
}

func seedOrders(ctx context.Context, store *Store, now time.Time) error {
	pickupDowntown := mustPoint(40.7589, -73.9851)
	pickupUptown := mustPoint(40.7614, -73.9776)
	deliverySuburb := mustPoint(40.7505, -73.9934)
	_ = deliverySuburb

	partner1 := kernel.ID("delivery-1")
	partner2 := kernel.ID("delivery-2")
	eta15 := now.Add(15 * time.Minute)
	eta20 := now.Add(20 * time.Minute)

	orders := []*order.Order{
		mustOrder("order-1", "vendor-1", &partner1, order.StatusInTransit,
			[]seedItem{
				{"item-1", "Margherita Pizza", 1, 18.99, "Fresh mozzarella, tomato sauce, basil"},
				{"item-2", "Caesar Salad", 1, 12.99, "Romaine lettuce, parmesan, croutons"},
			},
			"123 Food Street, Downtown", pickupDowntown, 34.97,
			now.Add(-30*time.Minute), now, &eta15),
		mustOrder("order-2", "vendor-1", nil, order.StatusPending,
			[]seedItem{
				{"item-3", "Chicken Burger", 2, 15.99, "Grilled chicken, lettuce, tomato"},
				{"item-4", "French Fries", 1, 6.99, "Crispy golden fries"},
			},
			"123 Food Street, Downtown", pickupDowntown, 38.97,
			now.Add(-10*time.Minute), now, nil),
		mustOrder("order-3", "vendor-2", &partner2, order.StatusPickedUp,
			[]seedItem{
				{"item-5", "Organic Bananas", 6, 4.99, "Fresh organic bananas"},
				{"item-6", "Whole Milk", 1, 3.99, "1 gallon whole milk"},
				{"item-7", "Bread Loaf", 1, 2.99, "Whole wheat bread"},
			},
			"456 Market Avenue, Uptown", pickupUptown, 11.97,
			now.Add(-45*time.Minute), now, &eta20),
	}

	for _, o := range orders {
		if err := store.Orders.Add(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

type seedItem struct {
	id          string
	name        string
	quantity    int
	price       float64
	description string
}

func mustVendor(id, email, name, businessName, address, phone string, createdAt time.Time) *account.Vendor {
	v, err := account.RestoreVendor(kernel.ID(id), email, name, businessName, address, phone, createdAt)
	if err != nil {
		panic(err)
	}
	return v
}

func mustPartner(id, email, name, phone, vehicleType string, available bool, rating float64, createdAt time.Time) *partner.DeliveryPartner {
	p, err := partner.RestoreDeliveryPartner(kernel.ID(id), email, name, phone, vehicleType, available, rating, createdAt)
	if err != nil {
		panic(err)
	}
	return p
}

func mustOrder(
	id, vendorID string,
	partnerID *kernel.ID,
	status order.Status,
	seedItems []seedItem,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	totalAmount float64,
	createdAt, updatedAt time.Time,
	estimatedDelivery *time.Time,
) *order.Order {
	items := make([]order.Item, 0, len(seedItems))
	for _, si := range seedItems {
		item, err := order.NewItem(kernel.ID(si.id), si.name, si.quantity, si.price, si.description)
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}

	o, err := order.RestoreOrder(kernel.ID(id), kernel.ID(vendorID), "customer-1", partnerID,
		items, status, pickupAddress, "789 Residential Lane, Suburb",
		pickupPoint, mustPoint(40.7505, -73.9934), totalAmount,
		"John Doe", "+1-555-0301", createdAt, updatedAt, estimatedDelivery)
	if err != nil {
		panic(err)
	}
	return o
}

func mustPoint(lat, lon float64) kernel.GeoPoint {
	p, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}
