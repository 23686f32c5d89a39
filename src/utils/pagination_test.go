package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(target string) *gin.Context {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", target, nil)
	return ctx
}

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		defaultSize int
		want        Pagination
	}{
		{"defaults", "/journeys", 5, Pagination{Page: 1, PageSize: 5, Offset: 0}},
		{"explicit page", "/journeys?page=3", 5, Pagination{Page: 3, PageSize: 5, Offset: 10}},
		{"explicit size", "/orders?page=2&page_size=25", 10, Pagination{Page: 2, PageSize: 25, Offset: 25}},
		{"size capped", "/orders?page_size=500", 10, Pagination{Page: 1, PageSize: MaxPageSize, Offset: 0}},
		{"garbage falls back", "/orders?page=x&page_size=y", 10, Pagination{Page: 1, PageSize: 10, Offset: 0}},
		{"negative falls back", "/orders?page=-1&page_size=-5", 10, Pagination{Page: 1, PageSize: 10, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := paginationContext(tt.target)
			assert.Equal(t, tt.want, GetPagination(ctx, tt.defaultSize))
		})
	}
}
