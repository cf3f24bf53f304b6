package pagination

// Response is the envelope returned by every list endpoint.
// T is the handler DTO type.
type Response[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// NewResponse builds the envelope for one page of results.
// Items is never serialized as null; an empty page yields [].
func NewResponse[T any](items []T, total int64, params Params) Response[T] {
	if items == nil {
		items = []T{}
	}
	pages := CalculateTotalPages(total, params.Size)
	return Response[T]{
		Items:   items,
		Total:   total,
		Page:    params.Page,
		Size:    params.Size,
		Pages:   pages,
		HasNext: params.Page < pages,
		HasPrev: params.Page > 1,
	}
}
