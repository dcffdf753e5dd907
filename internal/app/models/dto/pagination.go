package dto

// PaginationInfo describes the position of a page within a result set
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	Limit       int   `json:"limit" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
	HasNextPage bool  `json:"hasNextPage" example:"true"`
	HasPrevPage bool  `json:"hasPrevPage" example:"false"`
}
