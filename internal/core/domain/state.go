package domain

import "github.com/shopspring/decimal"

// ResourceState is the client side cache of one resource type: the records
// of the currently loaded page in server order, its pagination descriptor and
// the lifecycle flags of the store.
type ResourceState[T any] struct {
	Records    []T         `json:"records"`
	Pagination *Pagination `json:"pagination"`
	Loading    bool        `json:"loading"`
	Error      string      `json:"error,omitempty"`
}

// Scope tells over which population a summary figure was computed.
type Scope string

const (
	// ScopePage figures cover only the records currently held by the store.
	ScopePage Scope = "page"
	// ScopeCollection figures cover the full remote collection.
	ScopeCollection Scope = "collection"
)

// Figure is one summary value shown above a list. Display is Value formatted
// for the UI.
type Figure struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
	Scope   Scope           `json:"scope"`
}
