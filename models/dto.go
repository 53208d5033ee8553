package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
}

// No binding on Quantity: values below 1 are clamped by the cart, never
// rejected.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

type CheckoutRequest struct {
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"order_id" form:"order_id" binding:"required"`
	Status  string `json:"status" form:"status" binding:"required"`
}

type CategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type UpdateUserRoleRequest struct {
	Roles []string `json:"roles" binding:"required"`
}

type ContactRequest struct {
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Subject   string `json:"subject" form:"subject" binding:"required"`
	Message   string `json:"message" form:"message" binding:"required"`
}
