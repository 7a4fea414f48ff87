// Package pagination implements the offset-token paging used by list
// endpoints.
package pagination

import "strconv"

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Pagination binds the common paging query parameters.
type Pagination struct {
	PageToken string `form:"page_token" json:"page_token"`
	PageSize  int    `form:"page_size" json:"page_size"`
}

// PageInfo is embedded in list responses.
type PageInfo struct {
	NextPageToken string `json:"next_page_token,omitempty"`
	TotalSize     int    `json:"total_size"`
}

// Window resolves the [offset, offset+size) slice bounds for a list of total
// items. Bad tokens read as the first page.
func (p Pagination) Window(total int) (start, end int, info PageInfo) {
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	offset, err := strconv.Atoi(p.PageToken)
	if err != nil || offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	end = offset + size
	if end > total {
		end = total
	}
	info = PageInfo{TotalSize: total}
	if end < total {
		info.NextPageToken = strconv.Itoa(end)
	}
	return offset, end, info
}
