package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/harrison/garmentqc/internal/models"
)

// Point field names accepted on the wire.
const (
	FieldInspectionPoint = "inspectionPoint"
	FieldPoint           = "point"
)

// wireEntry is the JSON form of a DefectEntry. Either point field name is
// accepted on input.
type wireEntry struct {
	Category        string  `json:"category"`
	InspectionPoint *string `json:"inspectionPoint,omitempty"`
	Point           *string `json:"point,omitempty"`
	Critical        int     `json:"critical"`
	Major           int     `json:"major"`
	Minor           int     `json:"minor"`
}

// pointEntry is the JSON form written when a caller prefers "point".
type pointEntry struct {
	Category string `json:"category"`
	Point    string `json:"point"`
	Critical int    `json:"critical"`
	Major    int    `json:"major"`
	Minor    int    `json:"minor"`
}

func (w wireEntry) toEntry() (models.DefectEntry, error) {
	var point string
	switch {
	case w.InspectionPoint != nil && w.Point != nil && *w.InspectionPoint != *w.Point:
		return models.DefectEntry{}, models.NewInvalidInput("inspectionPoint", *w.Point, "entry has conflicting inspectionPoint and point fields")
	case w.InspectionPoint != nil:
		point = *w.InspectionPoint
	case w.Point != nil:
		point = *w.Point
	}
	return models.DefectEntry{
		Category:        w.Category,
		InspectionPoint: point,
		Critical:        w.Critical,
		Major:           w.Major,
		Minor:           w.Minor,
	}, nil
}

// Serialize encodes the ledger as a JSON array of entries in insertion order.
func (l *Ledger) Serialize() (string, error) {
	return l.SerializeWithPointField(FieldInspectionPoint)
}

// SerializeWithPointField is Serialize with the point field written as
// "inspectionPoint" or "point".
func (l *Ledger) SerializeWithPointField(field string) (string, error) {
	var v interface{}
	switch field {
	case "", FieldInspectionPoint:
		v = l.Entries()
	case FieldPoint:
		entries := make([]pointEntry, 0, len(l.entries))
		for _, e := range l.entries {
			entries = append(entries, pointEntry{Category: e.Category, Point: e.InspectionPoint, Critical: e.Critical, Major: e.Major, Minor: e.Minor})
		}
		v = entries
	default:
		return "", fmt.Errorf("unknown point field %q, must be %s or %s", field, FieldInspectionPoint, FieldPoint)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal ledger: %w", err)
	}
	return string(data), nil
}

// Deserialize parses a JSON array of defect entries.
func Deserialize(data string) (*Ledger, error) {
	l := New()
	if err := l.UnmarshalJSON([]byte(data)); err != nil {
		return nil, err
	}
	return l, nil
}

// MarshalJSON implements json.Marshaler.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Entries())
}

// UnmarshalJSON implements json.Unmarshaler, replacing the ledger's contents.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewInvalidInput("ledger", nil, "empty ledger document")
	}

	var wire []wireEntry
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: parse ledger: %v", models.ErrInvalidInput, err)
	}

	entries := make([]models.DefectEntry, 0, len(wire))
	for _, w := range wire {
		e, err := w.toEntry()
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	return l.replace(entries)
}

// yamlEntry is the YAML form of a DefectEntry.
type yamlEntry struct {
	Category        string `yaml:"category"`
	InspectionPoint string `yaml:"inspection_point,omitempty"`
	Point           string `yaml:"point,omitempty"`
	Critical        int    `yaml:"critical"`
	Major           int    `yaml:"major"`
	Minor           int    `yaml:"minor"`
}

// MarshalYAML implements yaml.Marshaler.
func (l *Ledger) MarshalYAML() (interface{}, error) {
	entries := make([]yamlEntry, 0, len(l.entries))
	for _, e := range l.entries {
		entries = append(entries, yamlEntry{
			Category:        e.Category,
			InspectionPoint: e.InspectionPoint,
			Critical:        e.Critical,
			Major:           e.Major,
			Minor:           e.Minor,
		})
	}
	return entries, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, replacing the ledger's contents.
func (l *Ledger) UnmarshalYAML(value *yaml.Node) error {
	var raw []yamlEntry
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: parse ledger: %v", models.ErrInvalidInput, err)
	}

	entries := make([]models.DefectEntry, 0, len(raw))
	for _, r := range raw {
		point := r.InspectionPoint
		if point == "" {
			point = r.Point
		} else if r.Point != "" && r.Point != point {
			return models.NewInvalidInput("inspection_point", r.Point, "entry has conflicting inspection_point and point fields")
		}
		entries = append(entries, models.DefectEntry{
			Category:        r.Category,
			InspectionPoint: point,
			Critical:        r.Critical,
			Major:           r.Major,
			Minor:           r.Minor,
		})
	}
	return l.replace(entries)
}

func (l *Ledger) replace(entries []models.DefectEntry) error {
	fresh, err := FromEntries(entries)
	if err != nil {
		return err
	}
	*l = *fresh
	return nil
}
