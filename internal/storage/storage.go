package storage

import "v4swap/internal/model"

// Storage defines a sink for swap records.
type Storage interface {
	PutSwap(record model.SwapRecord) error
}
