package order

import (
	"errors"
	"fmt"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

// Item is a single validated order line. Items are immutable once the
// order is created; the order total is supplied by the caller and is not
// re-derived from the lines.
type Item struct {
	id          kernel.ID
	name        string
	quantity    int
	price       float64
	description string
}

// NewItem creates an order line. Quantity must be positive and the unit
// price non-negative; the description is optional.
func NewItem(id kernel.ID, name string, quantity int, price float64, description string) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g is negative", price))
	}

	return Item{id: id, name: name, quantity: quantity, price: price, description: description}, nil
}

// ID returns the line identifier.
func (i Item) ID() kernel.ID {
	return i.id
}

// Name returns the display name of the line.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Description returns the optional free-text description.
func (i Item) Description() string {
	return i.description
}

// validateItems checks a full item list for an order.
func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	var err error
	for _, item := range items {
		if item.id.IsZero() {
			err = errors.Join(err, errs.NewValueIsInvalidError("items"))
		}
	}
	return err
}
