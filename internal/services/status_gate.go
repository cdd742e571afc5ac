package services

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

// OrderNotEditableError is returned when a mutation targets an order whose
// status is terminal.
type OrderNotEditableError struct {
	Status models.DeliveryStatus
}

func (e *OrderNotEditableError) Error() string {
	return fmt.Sprintf("you can not change orders with the status %s", e.Status)
}

// StatusGate authorizes mutations against an order based on its current
// delivery status. Orders in a terminal status (and their items) are
// immutable.
type StatusGate struct {
	terminal map[models.DeliveryStatus]struct{}
}

// NewStatusGate builds a gate from the given terminal statuses. With no
// statuses given it falls back to DELIVERED.
func NewStatusGate(terminal []models.DeliveryStatus) *StatusGate {
	if len(terminal) == 0 {
		terminal = []models.DeliveryStatus{models.StatusDelivered}
	}
	set := make(map[models.DeliveryStatus]struct{}, len(terminal))
	for _, s := range terminal {
		set[s] = struct{}{}
	}
	return &StatusGate{terminal: set}
}

// IsTerminal reports whether status permits no further mutation.
func (g *StatusGate) IsTerminal(status models.DeliveryStatus) bool {
	_, ok := g.terminal[status]
	return ok
}

// Check returns an OrderNotEditableError if status is terminal. It must be
// called before any write to an order or its items.
func (g *StatusGate) Check(status models.DeliveryStatus) error {
	if g.IsTerminal(status) {
		return &OrderNotEditableError{Status: status}
	}
	return nil
}
