package handlers

import (
	"net/http"

	"github.com/ashurstore/commerce-api/internal/cart"
	"github.com/ashurstore/commerce-api/internal/session"
	"github.com/ashurstore/commerce-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterCartRoutes registers the session-scoped cart API.
func RegisterCartRoutes(r *gin.Engine, cfg HandlerConfig) {
	g := r.Group("/cart")

	g.POST("/add-to-cart", func(c *gin.Context) {
		var req validation.AddToCartRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		crt, err := cfg.Carts.Add(c.Request.Context(), session.ID(c), req.ItemID, cart.ItemType(req.Type), req.Quantity)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": req.Type + " added to cart successfully", "cart": crt})
	})

	g.GET("/get-cart", func(c *gin.Context) {
		crt, err := cfg.Carts.Get(c.Request.Context(), session.ID(c))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": crt, "totalPrice": crt.Total()})
	})

	g.POST("/delete-from-cart", func(c *gin.Context) {
		var req validation.RemoveFromCartRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		crt, err := cfg.Carts.Remove(c.Request.Context(), session.ID(c), req.ItemID, cart.ItemType(req.Type))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": crt})
	})

	g.PUT("/quantity", func(c *gin.Context) {
		var req validation.UpdateQuantityRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		crt, err := cfg.Carts.UpdateQuantity(c.Request.Context(), session.ID(c), req.ItemID, cart.ItemType(req.Type), *req.Quantity)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": crt})
	})

	g.DELETE("/clear-cart", func(c *gin.Context) {
		if err := cfg.Carts.Clear(c.Request.Context(), session.ID(c)); err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	})
}
