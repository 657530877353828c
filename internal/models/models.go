package models

// User is identified by email; there is no surrogate id and no update or
// delete path once registered.
type User struct {
	Email        string `gorm:"primaryKey"            json:"email"`
	Name         string `gorm:"not null"              json:"name"`
	PasswordHash string `gorm:"not null"              json:"-"`
	Role         string `gorm:"not null;default:user" json:"role"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Quantity    uint    `json:"quantity"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type WishlistEntry struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail string `gorm:"index;not null"           json:"user_email"`
	ProductID uint   `gorm:"not null"                 json:"product_id"`
}
