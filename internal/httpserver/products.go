package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	productsvc "shopapi/internal/service/product"
)

type createProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"gte=0"`
	CategoryID  string          `json:"categoryId"`
	ImageURLs   []string        `json:"imageUrls"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *string          `json:"categoryId"`
	ImageURLs   []string         `json:"imageUrls"`
}

func (h *handlers) listProducts(c *gin.Context) {
	filter := productsvc.ListFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
		Limit:      intQuery(c, "limit", 10),
		Offset:     intQuery(c, "offset", 0),
	}
	if v := c.Query("minPrice"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil {
			respondErrorCode(c, http.StatusBadRequest, codeBadRequest, "Invalid minPrice")
			return
		}
		filter.MinPrice = &min
	}
	if v := c.Query("maxPrice"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil {
			respondErrorCode(c, http.StatusBadRequest, codeBadRequest, "Invalid maxPrice")
			return
		}
		filter.MaxPrice = &max
	}

	c.JSON(http.StatusOK, h.deps.ProductSvc.List(filter))
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.deps.ProductSvc.Create(productsvc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handlers) updateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.deps.ProductSvc.Update(c.Param("productId"), productsvc.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
