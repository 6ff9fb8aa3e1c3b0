package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// VendorInfo is the vendor detail attached to a product response when the
// product's derived vendor key resolves.
type VendorInfo struct {
	VendorID   string `json:"vendor_id"`
	Name       string `json:"name"`
	VendorType string `json:"vendor_type"`
}

// VendorResolver looks up vendor details by derived key. A miss is tolerated;
// the product is served without vendor info.
type VendorResolver interface {
	Resolve(key string) (VendorInfo, bool)
}

// Handler exposes catalog HTTP endpoints.
type Handler struct {
	service Service
	vendors VendorResolver
}

func NewHandler(service Service, vendors VendorResolver) *Handler {
	return &Handler{service: service, vendors: vendors}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/facets", h.listFacets)
	})
}

type productDetail struct {
	Product
	Vendor *VendorInfo `json:"vendor,omitempty"`
}

type productListResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{
		Teams:      splitParam(q.Get("team")),
		Categories: splitParam(q.Get("category")),
		Price:      PriceBand(q.Get("price")),
	}
	for _, vt := range splitParam(q.Get("vendor_type")) {
		f.VendorTypes = append(f.VendorTypes, VendorType(vt))
	}

	key := SortKey(q.Get("sort"))
	if key == "" {
		key = SortPopular
	}

	products := h.service.ListProducts(f, key)
	respond(w, http.StatusOK, productListResponse{Products: products, Count: len(products)})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.service.GetProduct(id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	detail := productDetail{Product: p}
	if v, ok := h.vendors.Resolve(p.VendorKey()); ok {
		detail.Vendor = &v
	}
	respond(w, http.StatusOK, detail)
}

func (h *Handler) listFacets(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{
		"teams":      h.service.Teams(),
		"categories": h.service.Categories(),
	})
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
