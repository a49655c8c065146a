package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/storefront/domain"
)

// Defaults applied to products created through the add form
const (
	DefaultCategory    = "General"
	DefaultDescription = "New product description"
	DefaultBrand       = "Generic"
	DefaultStock       = 10
)

// CatalogHandlers exposes the catalog intents over HTTP
type CatalogHandlers struct {
	catalog domain.CatalogStore
}

// NewCatalogHandlers creates new catalog handlers
func NewCatalogHandlers(catalog domain.CatalogStore) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog}
}

// ProductRequest represents an add-product request
type ProductRequest struct {
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage" binding:"gte=0,lte=100"`
	Rating             float64 `json:"rating" binding:"gte=0,lte=5"`
	Stock              *int    `json:"stock" binding:"omitempty,gte=0"`
	Brand              string  `json:"brand"`
	Category           string  `json:"category"`
}

// Draft fills form defaults and returns the product draft
func (r ProductRequest) Draft() domain.ProductDraft {
	d := domain.ProductDraft{
		Title:              r.Title,
		Description:        r.Description,
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		Rating:             r.Rating,
		Stock:              DefaultStock,
		Brand:              r.Brand,
		Category:           r.Category,
	}
	if r.Stock != nil {
		d.Stock = *r.Stock
	}
	if d.Description == "" {
		d.Description = DefaultDescription
	}
	if d.Brand == "" {
		d.Brand = DefaultBrand
	}
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	return d
}

// Get returns the cached catalog; ?sort=id_desc orders newest first
func (h *CatalogHandlers) Get(c *gin.Context) {
	snap := h.catalog.Snapshot()

	items := snap.Items
	switch c.Query("sort") {
	case "":
	case "id_desc":
		items = snap.SortedByIDDesc()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported sort order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": catalogView(snap, items)})
}

// Fetch handles the fetch intent; ?if_empty=true skips the call when items are cached
func (h *CatalogHandlers) Fetch(c *gin.Context) {
	if ifEmpty, _ := strconv.ParseBool(c.Query("if_empty")); ifEmpty {
		if snap := h.catalog.Snapshot(); len(snap.Items) > 0 {
			c.JSON(http.StatusOK, gin.H{"data": catalogView(snap, snap.Items)})
			return
		}
	}

	snap, err := h.catalog.Fetch(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": snap.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": catalogView(snap, snap.Items)})
}

// Create handles the add-product intent
func (h *CatalogHandlers) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := h.catalog.Add(c.Request.Context(), req.Draft())
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// Update handles the update-product intent
func (h *CatalogHandlers) Update(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch.ID = id

	snap, found := h.catalog.Update(c.Request.Context(), patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
		return
	}

	product, _ := snap.Find(id)
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Delete handles the delete-product intent
func (h *CatalogHandlers) Delete(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	snap := h.catalog.Delete(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"data": catalogView(snap, snap.Items)})
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return id, true
}
