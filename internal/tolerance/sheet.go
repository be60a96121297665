package tolerance

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harrison/garmentqc/internal/models"
)

// SheetFormat is the encoding of a measurement sheet.
type SheetFormat string

// Sheet formats
const (
	SheetYAML SheetFormat = "yaml"
	SheetJSON SheetFormat = "json"
)

// SheetFormatForPath picks the format from the file extension; .json is JSON,
// anything else is YAML.
func SheetFormatForPath(path string) SheetFormat {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return SheetJSON
	}
	return SheetYAML
}

// Sheet is a measurement sheet for one sample: the style it belongs to and
// its points of measure.
type Sheet struct {
	Style  string                    `json:"style,omitempty" yaml:"style,omitempty"`
	Size   string                    `json:"size,omitempty" yaml:"size,omitempty"`
	Points []models.MeasurementPoint `json:"points" yaml:"points"`
}

// LoadSheet parses a measurement sheet and assigns a UUID to points without an id.
// Point ids must be unique and tolerances non-negative.
func LoadSheet(r io.Reader, format SheetFormat) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read measurement sheet: %w", err)
	}

	sheet := &Sheet{}
	switch format {
	case SheetJSON:
		err = json.Unmarshal(data, sheet)
	case SheetYAML:
		err = yaml.Unmarshal(data, sheet)
	default:
		return nil, fmt.Errorf("unknown sheet format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse measurement sheet: %v", models.ErrInvalidInput, err)
	}

	if err := sheet.normalize(); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *Sheet) normalize() error {
	seen := make(map[string]bool, len(s.Points))
	for i := range s.Points {
		p := &s.Points[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if seen[p.ID] {
			return models.NewInvalidInput("id", p.ID, "duplicate measurement point id")
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.PointOfMeasure) == "" {
			return models.NewInvalidInput("pointOfMeasure", nil, fmt.Sprintf("point %d has no point of measure", i+1))
		}
		if p.Tolerance < 0 {
			return models.NewInvalidInput("tolerance", p.Tolerance, fmt.Sprintf("point %q tolerance must be >= 0", p.PointOfMeasure))
		}
	}
	return nil
}
