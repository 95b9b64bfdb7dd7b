package models

import "time"

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaginationResult struct {
	Total    int64 `json:"total"`
	PageNum  int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPaginationResult creates a new pagination result object.
func NewPaginationResult(total int64, pageNum, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	}
}

// TotalPages derives the page count for the dashboard pager.
func (p PaginationResult) TotalPages() int64 {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + int64(p.PageSize) - 1) / int64(p.PageSize)
}

func (p PaginationResult) HasPrev() bool {
	return p.PageNum > 1
}

func (p PaginationResult) HasNext() bool {
	return int64(p.PageNum) < p.TotalPages()
}

func (p PaginationResult) PrevPage() int {
	return p.PageNum - 1
}

func (p PaginationResult) NextPage() int {
	return p.PageNum + 1
}
