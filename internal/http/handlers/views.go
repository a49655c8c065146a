package handlers

import "github.com/you/storefront/domain"

// SessionView is the JSON shape of a session snapshot
type SessionView struct {
	Authenticated bool          `json:"authenticated"`
	User          *domain.User  `json:"user"`
	Token         string        `json:"token,omitempty"`
	Status        domain.Status `json:"status"`
	Error         string        `json:"error,omitempty"`
}

func sessionView(s domain.Session) SessionView {
	return SessionView{
		Authenticated: s.IsAuthenticated(),
		User:          s.User,
		Token:         s.Token,
		Status:        s.Status,
		Error:         s.Error,
	}
}

// CatalogView is the JSON shape of a catalog snapshot
type CatalogView struct {
	Items    []domain.Product `json:"items"`
	Total    int              `json:"total"`
	Status   domain.Status    `json:"status"`
	Error    string           `json:"error,omitempty"`
	Rejected int              `json:"rejected"`
}

func catalogView(c domain.Catalog, items []domain.Product) CatalogView {
	if items == nil {
		items = []domain.Product{}
	}
	return CatalogView{
		Items:    items,
		Total:    c.Total,
		Status:   c.Status,
		Error:    c.Error,
		Rejected: c.Rejected,
	}
}
