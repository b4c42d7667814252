package models

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL" // score >= 6400 (80% x 80%)
	RiskHigh     RiskLevel = "HIGH"     // score >= 3600
	RiskMedium   RiskLevel = "MEDIUM"   // score >= 1600
	RiskLow      RiskLevel = "LOW"
)

// Axis bounds shared by severity, probability and the rendered plot.
const (
	AxisMin = 0.0
	AxisMax = 100.0
)

// DefaultMarkerSize is the marker area in points squared.
const DefaultMarkerSize = 250.0

type RiskEntry struct {
	Name        string  `json:"name" yaml:"name"`
	Severity    float64 `json:"severity" yaml:"severity"`
	Probability float64 `json:"probability" yaml:"probability"`
	Color       string  `json:"color" yaml:"color"`
	MarkerSize  float64 `json:"size" yaml:"size"`
}

// Register is an ordered set of risks. Order is draw order.
type Register []RiskEntry

// Score returns the risk score of a severity/probability pair.
func Score(severity, probability float64) float64 {
	return severity * probability
}

func (e RiskEntry) Score() float64 {
	return Score(e.Severity, e.Probability)
}

func (e RiskEntry) Level() RiskLevel {
	return LevelFor(e.Score())
}

// LevelFor bands a score into a RiskLevel.
func LevelFor(score float64) RiskLevel {
	switch {
	case score >= 6400:
		return RiskCritical
	case score >= 3600:
		return RiskHigh
	case score >= 1600:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RGBA parses the entry's hex color.
func (e RiskEntry) RGBA() (color.RGBA, error) {
	return ParseHexColor(e.Color)
}

// ParseHexColor accepts #rgb and #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(strings.TrimSpace(s), "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func (e RiskEntry) Validate() error {
	var errs []error
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if e.Severity < AxisMin || e.Severity > AxisMax {
		errs = append(errs, fmt.Errorf("severity %g outside [0,100]", e.Severity))
	}
	if e.Probability < AxisMin || e.Probability > AxisMax {
		errs = append(errs, fmt.Errorf("probability %g outside [0,100]", e.Probability))
	}
	if _, err := e.RGBA(); err != nil {
		errs = append(errs, err)
	}
	if e.MarkerSize <= 0 {
		errs = append(errs, fmt.Errorf("marker size %g must be positive", e.MarkerSize))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("risk %q: %w", e.Name, errors.Join(errs...))
}

// Validate checks every entry and that names are unique.
func (r Register) Validate() error {
	if len(r) == 0 {
		return errors.New("register is empty")
	}
	var errs []error
	seen := map[string]struct{}{}
	for _, e := range r {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, ok := seen[e.Name]; ok {
			errs = append(errs, fmt.Errorf("duplicate risk name %q", e.Name))
		}
		seen[e.Name] = struct{}{}
	}
	return errors.Join(errs...)
}

// FilterByLevel keeps entries of the given level, in register order.
func (r Register) FilterByLevel(level RiskLevel) Register {
	var filtered Register
	for _, e := range r {
		if e.Level() == level {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
