package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxPageSize = 100

type Pagination struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPagination reads page/page_size query params with a per-endpoint
// default size, capped at MaxPageSize.
func GetPagination(ctx *gin.Context, defaultSize int) Pagination {
	pageStr := ctx.DefaultQuery("page", "1")
	sizeStr := ctx.DefaultQuery("page_size", strconv.Itoa(defaultSize))

	page, _ := strconv.Atoi(pageStr)
	size, _ := strconv.Atoi(sizeStr)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: size,
		Offset:   (page - 1) * size,
	}
}
