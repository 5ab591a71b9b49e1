package order

import (
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MinItemQuantity and MaxItemQuantity bound the quantity of a single line item.
	MinItemQuantity = 1
	MaxItemQuantity = 100

	maxItemNoteLength = 200
)

// Item is one product line within an order. The unit price is a snapshot taken
// at order creation and is never recomputed; subtotal is unitPrice times
// quantity, frozen at the same moment.
type Item struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal
	note      string

	isConstructed bool
}

// NewItem creates a validated line item, computing the subtotal from the given
// unit-price snapshot.
func NewItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal, note string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, MaxItemQuantity)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	if len(note) > maxItemNoteLength {
		return Item{}, errs.NewValueIsOutOfRangeError("note length", len(note), 0, maxItemNoteLength)
	}

	return Item{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from persistence, trusting the stored
// subtotal snapshot.
func RestoreItem(productID kernel.UUID, quantity int, unitPrice, subtotal decimal.Decimal, note string) Item {
	return Item{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      subtotal,
		note:          note,
		isConstructed: true,
	}
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at creation.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns unitPrice multiplied by quantity, frozen at creation.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

// Note returns the optional per-item note.
func (i Item) Note() string {
	return i.note
}
