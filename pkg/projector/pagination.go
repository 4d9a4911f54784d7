package projector

import "fmt"

const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

// Page 归一化后的分页参数 offset=(Num-1)*Size 在过滤和排序之后应用
type Page struct {
	Num  int64
	Size int64
}

// NormalizePage page和limit小于1时取默认值
func NormalizePage(pageNum, pageSize int64) Page {
	if pageNum < 1 {
		pageNum = DefaultPageNum
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Page{Num: pageNum, Size: pageSize}
}

func (p Page) Offset() int64 {
	return (p.Num - 1) * p.Size
}

func (p Page) Limit() int64 {
	return p.Size
}

// DefaultSortColumn 稳定的排序回退键
const DefaultSortColumn = "created_at"

// NormalizeSort 排序键必须在白名单内 否则回退到创建时间降序
// allowed把外部排序键映射为实际的列名 防止把用户输入拼进SQL
func NormalizeSort(sortBy, sortOrder string, allowed map[string]string) string {
	column, ok := allowed[sortBy]
	if !ok {
		return DefaultSortColumn + " DESC"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}
