package model

import "time"

type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Hobbies  string `json:"hobbies"`
}

type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// Sale references a product by name, mirroring the denormalized schema the
// analytics queries join on.
type Sale struct {
	ID       int64     `json:"id"`
	Product  string    `json:"product"`
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
}
