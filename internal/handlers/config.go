package handlers

import (
	"errors"
	"net/http"

	"github.com/ashurstore/commerce-api/internal/cart"
	"github.com/ashurstore/commerce-api/internal/catalog"
	"github.com/ashurstore/commerce-api/internal/orders"
	"github.com/ashurstore/commerce-api/internal/reports"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HandlerConfig groups the dependencies the route registrations share.
type HandlerConfig struct {
	Carts    *cart.Service
	Orders   *orders.Service
	Catalog  *catalog.Service
	Reports  *reports.Service
	Validate *validatorv10.Validate
	Logger   *zap.Logger
}

// conflictErrs map to 400: the request was well-formed but clashes with
// current state.
var conflictErrs = []error{
	cart.ErrInvalidItemType,
	cart.ErrDuplicateItem,
	orders.ErrEmptyCart,
	orders.ErrAlreadyVerified,
	orders.ErrInvalidOTP,
	orders.ErrOTPExpired,
	orders.ErrInvalidStatus,
	catalog.ErrDuplicateProductName,
	catalog.ErrCategoryInUse,
}

// notFoundErrs map to 404.
var notFoundErrs = []error{
	cart.ErrCartNotFound,
	cart.ErrItemNotInCart,
	cart.ErrItemNotFound,
	orders.ErrOrderNotFound,
	orders.ErrNoOrdersForDate,
	catalog.ErrProductNotFound,
	catalog.ErrCategoryNotFound,
	catalog.ErrOfferNotFound,
	catalog.ErrDeletedProductNotFound,
}

// respondError translates domain errors into the HTTP taxonomy: state
// conflicts 400, not-found 404, anything else 500 with best-effort message
// passthrough.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	for _, sentinel := range conflictErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"message": sentinel.Error()})
			return
		}
	}
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"message": sentinel.Error()})
			return
		}
	}
	logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
