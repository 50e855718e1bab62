package service

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Pagination — метаданные постраничного списка: общее число записей,
// число страниц и признаки соседних страниц.
type Pagination struct {
	Total       int
	Pages       int
	CurrentPage int
	PerPage     int
	HasNext     bool
	HasPrev     bool
}

// запрос за пределами последней страницы — не ошибка, вернётся пустой список
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func paginate(total, page, perPage int) Pagination {
	pages := (total + perPage - 1) / perPage

	return Pagination{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
		HasNext:     page < pages,
		HasPrev:     page > 1,
	}
}
