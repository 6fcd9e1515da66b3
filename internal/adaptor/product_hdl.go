package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"product-catalog/internal/dto/request"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service   usecase.ProductService
	uploadDir string
	log       *zap.Logger
}

func NewProductHandler(service usecase.ProductService, uploadDir string, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:   service,
		uploadDir: uploadDir,
		log:       log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// GetProductByID handles GET /api/products/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !utils.IsValidUUID(id) {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// GetProductsByCategory handles GET /api/products/category/{categoryId}
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !utils.IsValidUUID(categoryID) {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	products, err := h.service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		handleServiceError(w, h.log, err, "list products by category")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// CreateProduct handles POST /api/products (admin only).
// Accepts multipart form-data with an optional image file, or plain JSON.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// UpdateProduct handles PUT /api/products/{id} (admin only)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !utils.IsValidUUID(id) {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	req, ok := h.decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/{id} (admin only)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !utils.IsValidUUID(id) {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}

// decodeProductRequest reads a product payload from either a multipart form
// or a JSON body. Writes the error response itself and reports success.
func (h *ProductHandler) decodeProductRequest(w http.ResponseWriter, r *http.Request) (*request.ProductRequest, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return h.decodeMultipart(w, r)
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return &req, true
}

func (h *ProductHandler) decodeMultipart(w http.ResponseWriter, r *http.Request) (*request.ProductRequest, bool) {
	imagePath, err := utils.SaveProductImage(r, h.uploadDir)
	if err != nil {
		if errors.Is(err, utils.ErrImageTooLarge) || errors.Is(err, utils.ErrImageExtension) {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return nil, false
		}
		h.log.Error("Failed to store product image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to store image")
		return nil, false
	}

	req := &request.ProductRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Image:       imagePath,
	}

	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid price", nil)
			return nil, false
		}
		req.Price = &price
	}

	if v := r.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid stock", nil)
			return nil, false
		}
		req.Stock = &stock
	}

	// Variants arrive as a JSON array in a form field.
	if v := r.FormValue("variants"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Variants); err != nil {
			utils.ResponseBadRequest(w, "Invalid variants payload", nil)
			return nil, false
		}
	}

	return req, true
}
