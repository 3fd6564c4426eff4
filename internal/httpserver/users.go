package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/internal/domain"
	usersvc "shopapi/internal/service/user"
)

type addressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (r *addressRequest) toDomain() *domain.Address {
	if r == nil {
		return nil
	}
	return &domain.Address{
		Street:     r.Street,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

type createUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Name     string          `json:"name" binding:"required"`
	Password string          `json:"password" binding:"required,min=8"`
	Address  *addressRequest `json:"address"`
}

type updateUserRequest struct {
	Email    *string         `json:"email" binding:"omitempty,email"`
	Name     *string         `json:"name"`
	Password *string         `json:"password" binding:"omitempty,min=8"`
	Address  *addressRequest `json:"address"`
}

func (h *handlers) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.UserSvc.List())
}

func (h *handlers) getUser(c *gin.Context) {
	u, err := h.deps.UserSvc.Get(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handlers) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.deps.UserSvc.Create(usersvc.CreateInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Address:  req.Address.toDomain(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *handlers) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.deps.UserSvc.Update(c.Param("userId"), usersvc.UpdateInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Address:  req.Address.toDomain(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handlers) deleteUser(c *gin.Context) {
	if err := h.deps.UserSvc.Delete(c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
