package domain

// StockEntry is the locally cached inventory count for one product.
// Stock is never negative; mutations go through the cache service,
// which serializes them per product.
type StockEntry struct {
	ProductID string
	Stock     int64
}
