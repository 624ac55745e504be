package sdk

import "time"

// Role is the permission tier carried by every user record.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleBartender Role = "bartender"
	RoleGuest     Role = "guest"
)

// User is the identity snapshot returned by the auth service. It is
// replaced wholesale on every login/verification, never patched locally.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest is the POST /login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// RefreshRequest is the POST /refresh payload.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse is returned by POST /refresh.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateUserInput is the admin user-creation payload.
type CreateUserInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=admin bartender guest"`
}

// UpdateUserInput carries optional fields for PUT /users/{id}.
type UpdateUserInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=admin bartender guest"`
}

// Ingredient is the inventory service's ingredient record.
type Ingredient struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	PackageSizeML    int       `json:"package_size_ml"`
	PackageCostCents int       `json:"package_cost_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IngredientStock is the current stock level for one ingredient.
type IngredientStock struct {
	IngredientID int64     `json:"ingredient_id"`
	QuantityML   int       `json:"quantity_ml"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OrderStatus mirrors the ordering service's order lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderCompleted OrderStatus = "completed"
	OrderCanceled  OrderStatus = "canceled"
)

// OrderItem is one line of an order.
type OrderItem struct {
	OrderID    int64  `json:"order_id"`
	RecipeID   int64  `json:"recipe_id"`
	Quantity   int    `json:"quantity"`
	PriceCents int    `json:"price_cents"`
	Status     string `json:"status"`
	RecipeName string `json:"recipe_name,omitempty"`
}

// Order is the ordering service's order record.
type Order struct {
	ID          int64       `json:"id"`
	CustomerID  *int64      `json:"customer_id"`
	BartenderID *int64      `json:"bartender_id"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Items       []OrderItem `json:"items,omitempty"`
	TotalCents  int         `json:"total_cents,omitempty"`
}

// CreateOrderInput is the POST /orders payload.
type CreateOrderInput struct {
	Items []CreateOrderItem `json:"items" validate:"required,min=1"`
}

// CreateOrderItem is one requested line in a new order.
type CreateOrderItem struct {
	RecipeID int64 `json:"recipe_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

// RecipePrice is the pricing service's answer for one recipe.
type RecipePrice struct {
	RecipeID   int64  `json:"recipe_id"`
	RecipeName string `json:"recipe_name,omitempty"`
	CostCents  int    `json:"cost_cents"`
	PriceCents int    `json:"price_cents"`
	CanMake    bool   `json:"can_make"`
}
