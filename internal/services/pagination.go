package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/multitarefa/cadastro-api/internal/models"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps Offset from overflowing
	MaxPage = math.MaxInt/MaxPageSize + 1
)

// Pagination is a validated page request
type Pagination struct {
	Page     int
	PageSize int
}

// Offset is the number of records skipped before this page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads the page and pageSize query values. Missing or
// non-positive values fall back to the defaults and pageSize is silently
// capped at MaxPageSize. page saturates at MaxPage. Only non-integer input
// is rejected.
func ParsePagination(pageStr, pageSizeStr string) (Pagination, error) {
	p := Pagination{Page: DefaultPage, PageSize: DefaultPageSize}
	verr := models.NewValidationError()

	if s := strings.TrimSpace(pageStr); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil {
			verr.Add("page", "The value '"+pageStr+"' is not valid.")
		} else if page > 0 {
			p.Page = page
		}
	}

	if s := strings.TrimSpace(pageSizeStr); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			verr.Add("pageSize", "The value '"+pageSizeStr+"' is not valid.")
		} else if size > 0 {
			p.PageSize = size
		}
	}

	if verr.HasErrors() {
		return Pagination{}, verr
	}

	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	return p, nil
}
