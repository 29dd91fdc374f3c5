package helpers

import "github.com/yigit/coursehub/internal/app/models/dto"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizeLimitOffset clamps a requested page to sane bounds
func NormalizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// NewPaginationInfo creates a standard PaginationInfo DTO
func NewPaginationInfo(total int64, limit, offset int) dto.PaginationInfo {
	limit, offset = NormalizeLimitOffset(limit, offset)
	return dto.PaginationInfo{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
