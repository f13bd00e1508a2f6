package queries

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one offset page of a listing. Total counts every match.
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int64
}

func (p Page[T]) HasNext() bool {
	return int64(p.Page*p.PageSize) < p.Total
}

// PageLimits normalizes the requested page and size against the configured bounds.
type PageLimits struct {
	Default int
	Max     int
}

func (l PageLimits) normalize(page, size int) (int, int) {
	def, max := l.Default, l.Max
	if def <= 0 {
		def = DefaultPageSize
	}
	if max <= 0 {
		max = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = def
	}
	if size > max {
		size = max
	}
	return page, size
}
