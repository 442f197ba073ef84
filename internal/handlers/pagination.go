package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/store"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// pageParams reads "page" and "pageSize", clamping them to sane bounds.
// The page is capped so the resulting offset cannot overflow.
func pageParams(c *gin.Context) (page, pageSize int) {
	pageSize, _ = strconv.Atoi(c.Query("pageSize"))
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize <= 0:
		pageSize = DefaultPageSize
	}

	page, _ = strconv.Atoi(c.Query("page"))
	switch {
	case page <= 0:
		page = 1
	case page > math.MaxInt/pageSize:
		page = math.MaxInt / pageSize
	}
	return page, pageSize
}

// storePage converts page parameters into a store limit/offset.
func storePage(page, pageSize int) store.Page {
	return store.Page{Limit: pageSize, Offset: (page - 1) * pageSize}
}

// newPage constructs the standard paginated response object.
func newPage[T any](data []T, totalRows int64, page, pageSize int) models.Page[T] {
	totalPages := 0
	if totalRows > 0 {
		totalPages = int(math.Ceil(float64(totalRows) / float64(pageSize)))
	}
	return models.Page[T]{
		Data:        data,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}
