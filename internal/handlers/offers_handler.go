package handlers

import (
	"net/http"

	"github.com/ashurstore/commerce-api/internal/catalog"
	"github.com/ashurstore/commerce-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterOfferRoutes registers offer bundle CRUD.
func RegisterOfferRoutes(r *gin.Engine, cfg HandlerConfig) {
	g := r.Group("/offers")

	g.POST("/create-offer", func(c *gin.Context) {
		var req validation.CreateOfferRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		o, err := cfg.Catalog.CreateOffer(c.Request.Context(), catalog.OfferInput{
			Title:        req.Title,
			ProductIDs:   req.ProductIDs,
			SpecialPrice: req.SpecialPrice,
			Image:        req.Image,
			Description:  req.Description,
		})
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Offer created successfully", "offer": o})
	})

	g.GET("/get-all-offers", func(c *gin.Context) {
		list, err := cfg.Catalog.ListOffers(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"offers": list})
	})

	g.GET("/get-one-offer/:offerId", func(c *gin.Context) {
		o, err := cfg.Catalog.GetOffer(c.Request.Context(), c.Param("offerId"))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"offer": o})
	})

	g.PUT("/update-offer/:offerId", func(c *gin.Context) {
		var req validation.UpdateOfferRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		o, err := cfg.Catalog.UpdateOffer(c.Request.Context(), c.Param("offerId"), catalog.OfferUpdate{
			Title:            req.Title,
			SpecialPrice:     req.SpecialPrice,
			Image:            req.Image,
			Description:      req.Description,
			ProductIDs:       req.ProductIDs,
			AddProductIDs:    req.AddProductIDs,
			RemoveProductIDs: req.RemoveProductIDs,
		})
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offer updated successfully", "offer": o})
	})

	g.DELETE("/delete-offer/:offerId", func(c *gin.Context) {
		if err := cfg.Catalog.DeleteOffer(c.Request.Context(), c.Param("offerId")); err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
	})
}
