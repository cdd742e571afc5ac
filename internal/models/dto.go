package models

// Request payloads, one dedicated shape per mutating action. Read responses
// serialize the entity structs directly; keeping the write shapes separate
// means system-managed fields (ids, status on items, timestamps, the
// customer of an existing order) are simply not bindable.

// CustomerRequest is the contact info submitted with a new order.
type CustomerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// OrderItemRequest is one requested line item. Entries sharing (pizza, size)
// are merged by the creation path before anything is persisted.
type OrderItemRequest struct {
	Pizza uint      `json:"pizza" binding:"required"`
	Size  PizzaSize `json:"size" binding:"required,oneof=S M L"`
	Count uint      `json:"count" binding:"required,min=1"`
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	Customer CustomerRequest    `json:"customer" binding:"required"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest is the PATCH /orders/:id payload. Status is the only
// writable field on an existing order.
type UpdateOrderRequest struct {
	Status DeliveryStatus `json:"status" binding:"required,oneof=NEW ACCEPTED READY SHIPPED DELIVERED"`
}

// UpdateOrderItemRequest is the PATCH /orders/:order_id/items/:id payload.
// Omitted fields are left unchanged.
type UpdateOrderItemRequest struct {
	Size  *PizzaSize `json:"size" binding:"omitempty,oneof=S M L"`
	Count *uint      `json:"count" binding:"omitempty,min=1"`
}
