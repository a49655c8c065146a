package domain

import "sort"

// Status is the lifecycle of the most recent asynchronous store operation
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// User represents the authenticated identity returned by the identity endpoint
type User struct {
	ID        int    `json:"id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image,omitempty"`
}

// Clone returns a copy of the user, nil-safe
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Credentials represents a login attempt
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult represents a successful identity endpoint response
type LoginResult struct {
	User  *User
	Token string
}

// Session is an immutable snapshot of the authentication state.
// Token is non-empty if and only if User is non-nil.
type Session struct {
	User   *User
	Token  string
	Status Status
	Error  string
}

// IsAuthenticated reports whether the session holds a user and a token
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Clone returns a deep copy safe to hand to readers
func (s Session) Clone() Session {
	s.User = s.User.Clone()
	return s
}

// Product represents a catalog item
type Product struct {
	ID                 int     `json:"id" validate:"required,gt=0"`
	Title              string  `json:"title" validate:"required"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand"`
	Category           string  `json:"category"`
}

// ProductDraft is a product that has not been assigned an id yet
type ProductDraft struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand"`
	Category           string  `json:"category"`
}

// WithID turns the draft into a product
func (d ProductDraft) WithID(id int) Product {
	return Product{
		ID:                 id,
		Title:              d.Title,
		Description:        d.Description,
		Price:              d.Price,
		DiscountPercentage: d.DiscountPercentage,
		Rating:             d.Rating,
		Stock:              d.Stock,
		Brand:              d.Brand,
		Category:           d.Category,
	}
}

// ProductPatch is a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	ID                 int      `json:"id"`
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Rating             *float64 `json:"rating,omitempty"`
	Stock              *int     `json:"stock,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Category           *string  `json:"category,omitempty"`
}

// Apply merges the patch over p and returns the result
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.DiscountPercentage != nil {
		p.DiscountPercentage = *pp.DiscountPercentage
	}
	if pp.Rating != nil {
		p.Rating = *pp.Rating
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.Brand != nil {
		p.Brand = *pp.Brand
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	return p
}

// FetchResult represents a bulk catalog response after boundary validation
type FetchResult struct {
	Products []Product
	Total    int
	Rejected int
}

// Catalog is an immutable snapshot of the locally cached product list
type Catalog struct {
	Items    []Product
	Total    int
	Error    string
	Status   Status
	Rejected int
}

// Clone returns a copy with its own backing array
func (c Catalog) Clone() Catalog {
	if c.Items != nil {
		items := make([]Product, len(c.Items))
		copy(items, c.Items)
		c.Items = items
	}
	return c
}

// MaxID returns the largest id in the catalog, 0 when empty
func (c Catalog) MaxID() int {
	max := 0
	for _, p := range c.Items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// Find returns the first product with the given id
func (c Catalog) Find(id int) (Product, bool) {
	for _, p := range c.Items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SortedByIDDesc returns the items newest first, the order the product table renders
func (c Catalog) SortedByIDDesc() []Product {
	items := make([]Product, len(c.Items))
	copy(items, c.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}
