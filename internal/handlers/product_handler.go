package handlers

import (
	"strconv"
	"strings"

	"gudang/internal/catalog"
	"gudang/internal/middleware"
	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/shopspring/decimal"
)

// Default page for product listings.
const (
	defaultLimit = 100
	maxLimit     = 1000
)

// ProductHandler handles HTTP requests for products, masked listings and
// identifier codes.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/masked", h.HandleMaskedProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.HandleDeleteProduct)
	productRoutes.Put("/:id/mask", h.HandleMaskProduct)
	productRoutes.Post("/:id/fnsku", h.HandleGenerateProductFNSKU)

	router.Post("/fnsku", h.HandleGenerateFNSKU)
}

// HandleListProducts filters the catalogue by search text, mask status and
// categories, then pages the result with skip and limit.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	status, err := catalog.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return badRequest(c, "Invalid status filter", err)
	}
	skip, limit, err := pageParams(c)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters", err)
	}

	list, err := h.service.ListProducts(catalog.Criteria{
		Search:     c.Query("search"),
		Status:     status,
		Categories: queryList(c, "category"),
	})
	if err != nil {
		return respondError(c, err, "Could not retrieve products")
	}

	c.Set("X-Total-Count", strconv.Itoa(len(list.Products)))
	return c.JSON(paginate(list.Products, skip, limit))
}

// HandleMaskedProducts lists every masked listing.
func (h *ProductHandler) HandleMaskedProducts(c *fiber.Ctx) error {
	masked, err := h.service.MaskedProducts()
	if err != nil {
		return respondError(c, err, "Could not retrieve masked products")
	}
	return c.JSON(masked)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	PID         string          `json:"pid" validate:"omitempty,max=64"`
	Name        string          `json:"name" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Description string          `json:"description" validate:"max=2000"`
	Images      []string        `json:"images" validate:"omitempty,dive,required"`
	Category    string          `json:"category" validate:"required,max=100"`
}

// HandleCreateProduct creates a new, unmasked product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	product := &models.Product{
		PID:         req.PID,
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Images:      models.ImageList(req.Images),
		Category:    req.Category,
	}
	if err := h.service.CreateProduct(product); err != nil {
		return respondError(c, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var update models.ProductUpdate
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(update); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), update)
	if err != nil {
		return respondError(c, err, "Could not update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err, "Could not delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MaskRequest is the body of PUT /products/:id/mask.
type MaskRequest struct {
	AmazonFNSKU string `json:"amazon_fnsku"`
}

// HandleMaskProduct attaches an identifier code to a product. The code may
// come in the JSON body or the amazon_fnsku query parameter.
func (h *ProductHandler) HandleMaskProduct(c *fiber.Ctx) error {
	var req MaskRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body", err)
		}
	}
	if req.AmazonFNSKU == "" {
		req.AmazonFNSKU = utils.CopyString(c.Query("amazon_fnsku"))
	}

	product, err := h.service.MaskProduct(c.Params("id"), req.AmazonFNSKU)
	if err != nil {
		return respondError(c, err, "Could not mask product")
	}
	return c.JSON(product)
}

// HandleGenerateProductFNSKU proposes a masked code for an existing product.
func (h *ProductHandler) HandleGenerateProductFNSKU(c *fiber.Ctx) error {
	code, err := h.service.GenerateFNSKUForProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Could not generate FNSKU")
	}
	return c.JSON(fiber.Map{"fnsku": code})
}

// GenerateFNSKURequest is the body of POST /fnsku.
type GenerateFNSKURequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Masked   bool   `json:"masked"`
}

// HandleGenerateFNSKU generates an unused code from a category and name.
func (h *ProductHandler) HandleGenerateFNSKU(c *fiber.Ctx) error {
	var req GenerateFNSKURequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	code, err := h.service.GenerateFNSKU(req.Category, req.Name, req.Masked)
	if err != nil {
		return respondError(c, err, "Could not generate FNSKU")
	}
	return c.JSON(fiber.Map{"fnsku": code})
}

// queryList collects a repeatable, comma-separated query parameter.
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func pageParams(c *fiber.Ctx) (skip, limit int, err error) {
	skip, limit = 0, defaultLimit
	if s := c.Query("skip"); s != "" {
		if skip, err = strconv.Atoi(s); err != nil || skip < 0 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "skip must be a non-negative integer")
		}
	}
	if s := c.Query("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "limit must be a non-negative integer")
		}
	}
	return skip, min(limit, maxLimit), nil
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := min(skip+limit, len(items))
	return items[skip:end]
}
