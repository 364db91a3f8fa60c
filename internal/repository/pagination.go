package repository

// Page is a limit/offset window for listing operations. Filtering beyond
// this belongs to the specialized query methods.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one page of items plus the total count matching the
// query, so callers can paginate without a second round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}
