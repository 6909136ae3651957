package repository

// 列表查询的分页缺省值
const (
	DefaultSkip  = 0
	DefaultLimit = 20
)

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return skip, limit
}
