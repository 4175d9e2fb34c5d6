package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ashurstore/commerce-api/internal/orders"
	"github.com/ashurstore/commerce-api/internal/session"
	"github.com/ashurstore/commerce-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterOrderRoutes registers the order lifecycle and reporting API.
func RegisterOrderRoutes(r *gin.Engine, cfg HandlerConfig) {
	g := r.Group("/orders")

	g.POST("/place-order", func(c *gin.Context) {
		var req validation.PlaceOrderRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		orderID, err := cfg.Orders.Place(c.Request.Context(), session.ID(c), orders.CustomerDetails{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Notes:   req.Notes,
			City:    req.City,
			Country: req.Country,
		})
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "OTP sent to email. Verify your order to confirm.",
			"orderId": orderID,
		})
	})

	g.POST("/verify-OTP", func(c *gin.Context) {
		var req validation.VerifyOTPRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		if err := cfg.Orders.Verify(c.Request.Context(), req.OrderID, req.OTP); err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order verified successfully, admin notified"})
	})

	g.GET("/get-order/:orderId", func(c *gin.Context) {
		o, err := cfg.Orders.Get(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": o})
	})

	g.GET("/get-all-orders", func(c *gin.Context) {
		list, err := cfg.Orders.List(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Orders retrieved successfully", "orders": list})
	})

	g.PUT("/update-order-status/:orderId", func(c *gin.Context) {
		var req validation.UpdateOrderStatusRequest
		if err := validation.BindAndValidate(c, &req, cfg.Validate); err != nil {
			return
		}

		o, err := cfg.Orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status, req.Comment)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": o})
	})

	g.DELETE("/delete-order/:orderId", func(c *gin.Context) {
		if err := cfg.Orders.Delete(c.Request.Context(), c.Param("orderId")); err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	})

	g.GET("/filter-by-date", func(c *gin.Context) {
		day, ok := parseDateQuery(c)
		if !ok {
			return
		}
		list, err := cfg.Orders.FilterByDay(c.Request.Context(), day)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Orders retrieved successfully", "orders": list})
	})

	g.GET("/generate-order-report", func(c *gin.Context) {
		pdf, err := cfg.Reports.Today(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		sendPDF(c, pdf, fmt.Sprintf("daily-orders-report-%s.pdf", time.Now().UTC().Format("2006-01-02")))
	})

	g.GET("/generate-report-for-date", func(c *gin.Context) {
		day, ok := parseDateQuery(c)
		if !ok {
			return
		}
		pdf, err := cfg.Reports.ForDate(c.Request.Context(), day)
		if err != nil {
			respondError(c, cfg.Logger, err)
			return
		}
		sendPDF(c, pdf, fmt.Sprintf("orders-report-%s.pdf", day.Format("2006-01-02")))
	})
}

// parseDateQuery reads ?date=YYYY-MM-DD, writing a 400 on absence or bad
// format.
func parseDateQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date is required"})
		return time.Time{}, false
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

func sendPDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
