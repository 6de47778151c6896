package store

import (
	"time"
)

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Orders is a page of orders.
type Orders []Order

// Tags are free-form labels attached to a product.
type Tags []string

// Inventory maps a SKU to the count in stock.
type Inventory map[string]int

// Coordinates is a (latitude, longitude) pair.
type Coordinates [2]float64

// Readings streams sensor values.
type Readings chan float64

// Matrix is a dense grid of counts.
type Matrix [][]int

// ByStatus indexes orders by status.
type ByStatus map[OrderStatus][]*Order

// Bag holds items of any single type.
type Bag[T any] []T

// Quantities is a bag of item counts.
type Quantities = Bag[int]

// Payload carries untyped values.
type Payload []any

// Category is a node of the product category tree.
type Category []Category

// Nothing is an array with no room.
type Nothing [0]int
