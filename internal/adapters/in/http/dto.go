package http

import "time"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMember is the request body for member registration.
type NewMember struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// RenameMember is the request body for changing a member's name.
type RenameMember struct {
	Name string `json:"name"`
}

// Member is the response body for member listings.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// NewBook is the request body for adding a book to the catalog.
type NewBook struct {
	Name          string `json:"name"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
}

// UpdateItem is the request body for editing a catalog item.
type UpdateItem struct {
	Name          string `json:"name"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
}

// Item is the response body for catalog listings.
type Item struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	Kind          string `json:"kind"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
}

// NewCategory is the request body for creating a category.
type NewCategory struct {
	Name string `json:"name"`
}

// AssignCategory is the request body for placing an item into a category.
type AssignCategory struct {
	CategoryID string `json:"categoryId"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	MemberID string `json:"memberId"`
	ItemID   string `json:"itemId"`
	Count    int    `json:"count"`
}

// OrderLine is one line of the order detail response.
type OrderLine struct {
	ItemName   string `json:"itemName"`
	OrderPrice int    `json:"orderPrice"`
	Count      int    `json:"count"`
}

// Order is the response body for the order detail endpoint. The lines
// carry the price and count snapshotted at order time.
type Order struct {
	ID             string      `json:"id"`
	MemberName     string      `json:"memberName"`
	OrderDate      time.Time   `json:"orderDate"`
	Status         string      `json:"status"`
	City           string      `json:"city"`
	Street         string      `json:"street"`
	Zipcode        string      `json:"zipcode"`
	DeliveryStatus string      `json:"deliveryStatus"`
	TotalPrice     int         `json:"totalPrice"`
	Lines          []OrderLine `json:"lines"`
}
