package model

// CredentialsRequest is the body of both /register and /login. Fields are
// validated once at the boundary; handlers never touch raw JSON maps.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Hobbies  string `json:"hobbies"`
}

type ProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      *bool  `json:"status"`
}
