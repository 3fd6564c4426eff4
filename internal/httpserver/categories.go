package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categorysvc "shopapi/internal/service/category"
)

type createCategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *string `json:"parentId"`
}

type updateCategoryRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parentId"`
}

func (h *handlers) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CategorySvc.List())
}

func (h *handlers) categoryTree(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CategorySvc.Tree())
}

func (h *handlers) getCategory(c *gin.Context) {
	cat, err := h.deps.CategorySvc.Get(c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cat, err := h.deps.CategorySvc.Create(categorysvc.CreateInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *handlers) updateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cat, err := h.deps.CategorySvc.Update(c.Param("categoryId"), categorysvc.UpdateInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) deleteCategory(c *gin.Context) {
	if err := h.deps.CategorySvc.Delete(c.Param("categoryId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
