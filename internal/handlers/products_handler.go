package handlers

import (
	"net/http"
	"strconv"

	"github.com/ashurstore/commerce-api/internal/catalog"
	"github.com/ashurstore/commerce-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registers product CRUD plus the soft-delete flow.
func RegisterProductRoutes(r *gin.Engine, cfg HandlerConfig) {
	g := r.Group("/products")

	g.POST("/add-product", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		p, err := cfg.Catalog.CreateProduct(c.Request.Context(), catalog.ProductInput{
			Name:          req.Name,
			ItemNumber:    req.ItemNumber,
			Description:   req.Description,
			Price:         req.Price,
			CategoryID:    req.CategoryID,
			Images:        req.Images,
			CustomDetails: toCustomDetails(req.CustomDetails),
		})
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": p})
	})

	g.GET("/get-all-products", func(c *gin.Context) {
		list, err := cfg.Catalog.ListProducts(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	})

	g.GET("/get-all-products-optimized", func(c *gin.Context) {
		params := catalog.SearchParams{
			Query:      c.Query("search"),
			CategoryID: c.Query("category"),
			MinPrice:   parseFloatQuery(c, "minPrice"),
			MaxPrice:   parseFloatQuery(c, "maxPrice"),
		}
		list, err := cfg.Catalog.SearchProducts(c.Request.Context(), params)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		if len(list) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found matching your search and filter criteria."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	})

	g.GET("/get-one-product/:productId", func(c *gin.Context) {
		p, err := cfg.Catalog.GetProduct(c.Request.Context(), c.Param("productId"))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p.PublicView()})
	})

	g.PUT("/edit-product/:productId", func(c *gin.Context) {
		var req validation.UpdateProductRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		upd := catalog.ProductUpdate{
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			CategoryID:   req.CategoryID,
			AddImages:    req.AddImages,
			RemoveImages: req.RemoveImages,
		}
		if req.CustomDetails != nil {
			upd.CustomDetails = toCustomDetails(req.CustomDetails)
		}
		p, err := cfg.Catalog.UpdateProduct(c.Request.Context(), c.Param("productId"), upd)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": p})
	})

	g.DELETE("/delete-product/:productId", func(c *gin.Context) {
		d, err := cfg.Catalog.DeleteProduct(c.Request.Context(), c.Param("productId"))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product moved to Recently Deleted", "product": d})
	})

	g.POST("/restore-product/:productId", func(c *gin.Context) {
		p, err := cfg.Catalog.RestoreProduct(c.Request.Context(), c.Param("productId"))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product restored successfully", "product": p})
	})

	g.GET("/get-all-deleted-products", func(c *gin.Context) {
		list, err := cfg.Catalog.ListDeletedProducts(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted products retrieved successfully", "products": list})
	})

	g.DELETE("/permanently-delete-product/:productId", func(c *gin.Context) {
		if err := cfg.Catalog.PurgeDeletedProduct(c.Request.Context(), c.Param("productId")); err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product permanently deleted"})
	})

	g.DELETE("/clear-deleted-products", func(c *gin.Context) {
		count, err := cfg.Catalog.PurgeAllDeletedProducts(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "All deleted products have been permanently deleted.",
			"deletedCount": count,
		})
	})
}

func toCustomDetails(in []validation.CustomDetailInput) []catalog.CustomDetail {
	if in == nil {
		return nil
	}
	out := make([]catalog.CustomDetail, 0, len(in))
	for _, d := range in {
		out = append(out, catalog.CustomDetail{Title: d.Title, Value: d.Value, Display: d.Display})
	}
	return out
}

func parseFloatQuery(c *gin.Context, key string) float64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
