package transport

import "encoding/json"

// CreateProductRequest accepts JSON, urlencoded and multipart bodies.
// Price and Quantity bind as json.Number so that both JSON numbers and
// string form values reach the service untouched for parsing.
type CreateProductRequest struct {
	Name        string      `json:"name"        form:"name"`
	Description string      `json:"description" form:"description"`
	Price       json.Number `json:"price"       form:"price"`
	Quantity    json.Number `json:"quantity"    form:"quantity"`
	Category    string      `json:"category"    form:"category"`
	Image       string      `json:"image"       form:"image"`
}

type RegisterRequest struct {
	Name     string `json:"name"     form:"name"`
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type AddWishlistRequest struct {
	Email     string `json:"email"      form:"email"`
	ProductID uint   `json:"product_id" form:"product_id"`
}
