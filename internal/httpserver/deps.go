package httpserver

import (
	"shopapi/internal/domain"
	authsvc "shopapi/internal/service/auth"
	categorysvc "shopapi/internal/service/category"
	ordersvc "shopapi/internal/service/order"
	productsvc "shopapi/internal/service/product"
	usersvc "shopapi/internal/service/user"
)

// Deps carries the service implementations the router wires handlers to.
type Deps struct {
	ProductSvc  ProductService
	CategorySvc CategoryService
	UserSvc     UserService
	CartSvc     CartService
	OrderSvc    OrderService
	AuthSvc     AuthService
}

type ProductService interface {
	List(f productsvc.ListFilter) productsvc.ListResult
	Get(id string) (domain.Product, error)
	Create(in productsvc.CreateInput) (domain.Product, error)
	Update(id string, in productsvc.UpdateInput) (domain.Product, error)
	Delete(id string) error
}

type CategoryService interface {
	List() []domain.Category
	Tree() []*domain.CategoryNode
	Get(id string) (domain.Category, error)
	Create(in categorysvc.CreateInput) (domain.Category, error)
	Update(id string, in categorysvc.UpdateInput) (domain.Category, error)
	Delete(id string) error
}

type UserService interface {
	List() []domain.User
	Get(id string) (domain.User, error)
	Create(in usersvc.CreateInput) (domain.User, error)
	Update(id string, in usersvc.UpdateInput) (domain.User, error)
	Delete(id string) error
}

type CartService interface {
	Get(userID string) domain.Cart
	AddItem(userID, productID string, quantity int) (domain.Cart, error)
	UpdateItem(userID, productID string, quantity int) (domain.Cart, error)
	RemoveItem(userID, productID string) (domain.Cart, error)
	Clear(userID string) domain.Cart
}

type OrderService interface {
	List(f ordersvc.ListFilter) ordersvc.ListResult
	Get(id string) (domain.Order, error)
	Place(in ordersvc.PlaceInput) (domain.Order, error)
	UpdateStatus(orderID string, next domain.OrderStatus) (domain.Order, error)
}

type AuthService interface {
	Login(email, password string) (authsvc.Session, error)
	Logout(token string)
	Validate(token string) (domain.User, error)
}
