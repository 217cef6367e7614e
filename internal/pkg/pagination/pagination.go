package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/soursync/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	defaultSize = 10
	maxSize     = 50
)

// Query holds validated page/size parameters.
type Query struct {
	Page int
	Size int
}

// Offset returns the row offset for the current page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

// FromContext reads ?page and ?size, clamping both to sane bounds.
func FromContext(c *gin.Context) Query {
	q := Query{
		Page: atoiOr(c.Query("page"), 1),
		Size: atoiOr(c.Query("size"), defaultSize),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = defaultSize
	} else if q.Size > maxSize {
		q.Size = maxSize
	}
	return q
}

// Paginate counts the query, fetches the requested page into dest and
// returns the pagination envelope metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.Offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}
	return meta(q, total), nil
}

func meta(q Query, total int64) response.Pagination {
	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
