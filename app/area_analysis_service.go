package app

import (
	"context"
	"fmt"
	"strings"

	"realestate/domain/area"
	"realestate/domain/dataset"
	"realestate/internal"
	"realestate/internal/errors"
)

// Messages returned to API callers
const (
	MsgQueryMissing     = "Query Missing !!"
	MsgAreaMissing      = "Area missing in Query!!"
	MsgDatasetNotLoaded = "Excel Not Loaded"
	MsgAreaNotFound     = "Area Not Found"
)

// AnalyzeRequest is the input of one analysis
type AnalyzeRequest struct {
	Query string `json:"query"`
	// Area, when non-blank, is used as the lookup key instead of the last
	// word of Query
	Area string `json:"area,omitempty"`
}

// AreaAnalysisService answers area queries against a dataset loaded at startup
type AreaAnalysisService struct {
	frame   *dataset.Frame
	columns area.Columns
	logger  *internal.Logger
}

// NewAreaAnalysisService creates the service around a read-only frame.
// A nil frame is allowed; every analysis then reports the dataset as not loaded.
func NewAreaAnalysisService(frame *dataset.Frame, columns area.Columns) *AreaAnalysisService {
	return &AreaAnalysisService{
		frame:   frame,
		columns: columns,
		logger:  internal.DefaultLogger.With("AreaAnalysis"),
	}
}

// Analyze resolves the area key, filters the dataset and builds the report
func (s *AreaAnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (report *area.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("analysis panicked: %v", r)
			report = nil
			err = errors.InternalError(fmt.Sprint(r))
		}
	}()

	key, err := resolveKey(req)
	if err != nil {
		return nil, err
	}

	frame, err := s.normalizedFrame()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "analysis cancelled")
	}

	filtered, err := frame.FilterEqualFold(s.columns.Location, key)
	if err != nil {
		return nil, errors.InternalError(err.Error())
	}
	if filtered.Len() == 0 {
		s.logger.Debug("no rows for area %q", key)
		return nil, errors.NotFound(MsgAreaNotFound)
	}
	if !frame.HasColumn(s.columns.Price) {
		return nil, errors.InternalError(fmt.Sprintf("column %q not found", s.columns.Price))
	}

	summary, err := s.summarize(key, filtered)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("area %q matched %d rows", key, filtered.Len())
	return &area.Report{
		Area:      key,
		ChartData: area.BuildChart(filtered, s.columns),
		Summary:   summary,
		Table:     filtered.Records(),
	}, nil
}

// Areas lists the distinct locations present in the dataset
func (s *AreaAnalysisService) Areas(ctx context.Context) ([]string, error) {
	frame, err := s.normalizedFrame()
	if err != nil {
		return nil, err
	}
	areas, err := frame.DistinctLower(s.columns.Location)
	if err != nil {
		return nil, errors.InternalError(err.Error())
	}
	return areas, nil
}

// Columns lists the dataset's normalized column names
func (s *AreaAnalysisService) Columns(ctx context.Context) ([]string, error) {
	frame, err := s.normalizedFrame()
	if err != nil {
		return nil, err
	}
	return frame.Columns, nil
}

// RowCount reports how many rows were loaded; false when nothing was loaded
func (s *AreaAnalysisService) RowCount() (int, bool) {
	if s.frame == nil {
		return 0, false
	}
	return s.frame.Len(), true
}

// normalizedFrame clones the shared frame and normalizes the clone's
// column names, leaving the shared frame untouched
func (s *AreaAnalysisService) normalizedFrame() (*dataset.Frame, error) {
	if s.frame == nil {
		return nil, errors.Unavailable(MsgDatasetNotLoaded)
	}
	frame := s.frame.Clone()
	frame.NormalizeColumns()
	s.logger.Trace("normalized columns: %v", frame.Columns)
	return frame, nil
}

func (s *AreaAnalysisService) summarize(key string, filtered *dataset.Frame) (string, error) {
	prices, err := filtered.Column(s.columns.Price)
	if err != nil {
		return "", errors.InternalError(err.Error())
	}
	avgPrice, err := area.RoundedMean(prices)
	if err != nil {
		return "", errors.Wrap(err, "failed to average prices")
	}

	var avgDemand *float64
	if demand, err := filtered.Column(s.columns.Demand); err == nil {
		if avgDemand, err = area.RoundedMean(demand); err != nil {
			return "", errors.Wrap(err, "failed to average demand")
		}
	}

	return area.Summarize(key, avgPrice, avgDemand), nil
}

// resolveKey validates the request and derives the lookup key
func resolveKey(req AnalyzeRequest) (string, error) {
	if explicit := strings.TrimSpace(req.Area); explicit != "" {
		return strings.ToLower(explicit), nil
	}
	if req.Query == "" {
		return "", errors.ValidationError(MsgQueryMissing)
	}
	key, ok := area.ExtractKey(req.Query)
	if !ok {
		return "", errors.ValidationError(MsgAreaMissing)
	}
	return key, nil
}
