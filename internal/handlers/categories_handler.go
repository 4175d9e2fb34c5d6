package handlers

import (
	"net/http"

	"github.com/ashurstore/commerce-api/internal/catalog"
	"github.com/ashurstore/commerce-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers category CRUD. Deleting a category still
// referenced by a product is rejected.
func RegisterCategoryRoutes(r *gin.Engine, cfg HandlerConfig) {
	g := r.Group("/categories")

	g.POST("/add-category", func(c *gin.Context) {
		var req validation.CreateCategoryRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		cat, err := cfg.Catalog.CreateCategory(c.Request.Context(), catalog.CategoryInput{
			Name:           req.Name,
			Description:    req.Description,
			SubCategoryIDs: req.SubCategoryIDs,
		})
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": cat})
	})

	g.GET("/get-all-categories", func(c *gin.Context) {
		list, err := cfg.Catalog.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": list})
	})

	g.GET("/get-one-category/:categoryId", func(c *gin.Context) {
		cat, products, err := cfg.Catalog.GetCategory(c.Request.Context(), c.Param("categoryId"))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": cat, "products": products})
	})

	g.PUT("/edit-category/:categoryId", func(c *gin.Context) {
		var req validation.UpdateCategoryRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		cat, err := cfg.Catalog.UpdateCategory(c.Request.Context(), c.Param("categoryId"), catalog.CategoryUpdate{
			Name:           req.Name,
			Description:    req.Description,
			SubCategoryIDs: req.SubCategoryIDs,
		})
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": cat})
	})

	g.DELETE("/delete-category/:categoryId", func(c *gin.Context) {
		if err := cfg.Catalog.DeleteCategory(c.Request.Context(), c.Param("categoryId")); err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	})
}
