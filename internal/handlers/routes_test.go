package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
)

// The public paths use action verbs (add-category, get-all-offers) rather
// than bare REST resources; clients depend on the exact spellings.
func TestRegisteredRoutePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := HandlerConfig{}
	RegisterCategoryRoutes(r, cfg)
	RegisterOfferRoutes(r, cfg)

	want := []struct {
		method string
		path   string
	}{
		{"POST", "/categories/add-category"},
		{"GET", "/categories/get-all-categories"},
		{"GET", "/categories/get-one-category/:categoryId"},
		{"PUT", "/categories/edit-category/:categoryId"},
		{"DELETE", "/categories/delete-category/:categoryId"},
		{"POST", "/offers/create-offer"},
		{"GET", "/offers/get-all-offers"},
		{"GET", "/offers/get-one-offer/:offerId"},
		{"PUT", "/offers/update-offer/:offerId"},
		{"DELETE", "/offers/delete-offer/:offerId"},
	}

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	for _, w := range want {
		if !registered[w.method+" "+w.path] {
			t.Fatalf("route %s %s not registered", w.method, w.path)
		}
	}
}
