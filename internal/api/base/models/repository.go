// Package models holds shared types for the repository/base layer.
package models

// PaginateResult is a page of query results.
type PaginateResult[T any] struct {
	// Current page number
	Page int64 `json:"page" bson:"page"`
	// Items per page
	Limit int64 `json:"limit" bson:"limit"`
	// Items in this page
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// The items
	Items []T `json:"items" bson:"items"`
	// Total matching items
	Total int64 `json:"total" bson:"total"`
	// Total pages
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult is the result of a count query.
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	Limit      int64 `json:"limit" bson:"limit"`
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`
}
