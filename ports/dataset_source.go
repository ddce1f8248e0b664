package ports

import (
	"context"

	"realestate/domain/dataset"
)

// DatasetSource loads the area statistics table once at startup
type DatasetSource interface {
	// Load reads the whole table into memory
	Load(ctx context.Context) (*dataset.Frame, error)

	// Describe names the source for startup logs
	Describe() string
}
