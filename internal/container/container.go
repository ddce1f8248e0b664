package container

import (
	"context"
	"fmt"

	"realestate/adapters/excel"
	"realestate/adapters/postgres"
	"realestate/app"
	"realestate/domain/area"
	"realestate/domain/dataset"
	"realestate/internal"
	"realestate/internal/config"
	"realestate/internal/errors"
	"realestate/ports"
)

// Container holds the application dependencies
type Container struct {
	Config *config.Config

	// Source the dataset was loaded from
	Source ports.DatasetSource

	// Dataset is shared read-only by every request
	Dataset *dataset.Frame

	AnalysisService *app.AreaAnalysisService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	source, err := NewDatasetSource(cfg.Data)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Source: source,
	}, nil
}

// NewDatasetSource selects the loader named by the data configuration
func NewDatasetSource(data config.DataConfig) (ports.DatasetSource, error) {
	switch data.Source {
	case config.SourceExcel:
		return excel.NewDataReader(data.ExcelFile, data.ExcelSheet), nil
	case config.SourcePostgres:
		return postgres.NewTableSource(data.DatabaseURL, data.Table), nil
	default:
		return nil, errors.ConfigInvalid("unknown DATASET_SOURCE: " + data.Source)
	}
}

// LoadDataset reads the dataset once and builds the analysis service around it
func (c *Container) LoadDataset(ctx context.Context) error {
	logger := internal.DefaultLogger.With("Container")
	logger.Info("Loading dataset from %s", c.Source.Describe())

	frame, err := c.Source.Load(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to load dataset from %s", c.Source.Describe())
	}

	c.Dataset = frame
	c.AnalysisService = app.NewAreaAnalysisService(frame, Columns(c.Config.Columns))
	logger.Info("Dataset loaded successfully (%d rows, %d columns)", frame.Len(), len(frame.Columns))
	return nil
}

// Columns converts configured column names into the analysis column set.
// Configured names are normalized so they match normalized headers.
func Columns(cfg config.ColumnConfig) area.Columns {
	return area.Columns{
		Location: dataset.NormalizeColumnName(cfg.Location),
		Year:     dataset.NormalizeColumnName(cfg.Year),
		Price:    dataset.NormalizeColumnName(cfg.Price),
		Demand:   dataset.NormalizeColumnName(cfg.Demand),
	}
}
