package contentapi

// Pagination is the page metadata returned with collections.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Meta wraps response metadata.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Collection is the {data: T[], meta} envelope.
type Collection[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Single is the {data: T, meta} envelope. Data is nil when the service returns null.
type Single[T any] struct {
	Data *T   `json:"data"`
	Meta Meta `json:"meta"`
}
