package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foxuse/showcase/internal/model"
	"github.com/foxuse/showcase/internal/repository"
)

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	Link        *string `json:"link"`
}

// normalizeLink maps an absent or empty link to NULL
func normalizeLink(link *string) *string {
	if link == nil || *link == "" {
		return nil
	}
	return link
}

// productID resolves the {id} path segment. Non-numeric ids behave as
// not found rather than a distinct error.
func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// ListProducts returns all products newest first, optionally filtered
// by exact category match
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.products.List(r.Context(), category)
	if err != nil {
		writeServerError(w, "Failed to fetch products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by id
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		writeServerError(w, "Failed to fetch product", err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// CreateProduct persists a new product (admin only)
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := readJSON(r, &req); err != nil {
		writeServerError(w, "Failed to create product", err)
		return
	}

	if req.Status == "" {
		req.Status = model.ProductStatusPlanning
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Category:    req.Category,
		Link:        normalizeLink(req.Link),
	}
	if err := h.products.Create(r.Context(), &product); err != nil {
		writeServerError(w, "Failed to create product", err)
		return
	}

	h.log.AdminAction("product.create", "product", product.ID)
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct replaces a product's fields (admin only). An absent
// link clears the stored one.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	var req productRequest
	if err := readJSON(r, &req); err != nil {
		writeServerError(w, "Failed to update product", err)
		return
	}

	product := model.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Category:    req.Category,
		Link:        normalizeLink(req.Link),
	}
	err := h.products.Update(r.Context(), &product)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		writeServerError(w, "Failed to update product", err)
		return
	}

	h.log.AdminAction("product.update", "product", product.ID)
	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product (admin only)
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	err := h.products.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		writeServerError(w, "Failed to delete product", err)
		return
	}

	h.log.AdminAction("product.delete", "product", id)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
