package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Default multipliers applied when a ties member omits them
const (
	DefaultHookMultiplier          = 10.0
	DefaultBendDeductionMultiplier = 2.0
)

// Format is the encoding of a parameter document
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// Member is one member entry of a parameter document. Pointers tell a
// missing value apart from an explicit zero.
type Member struct {
	Type string `json:"type" yaml:"type"`

	Cover       *float64 `json:"cover,omitempty" yaml:"cover,omitempty"`
	BarDiameter *float64 `json:"bar_diameter,omitempty" yaml:"bar_diameter,omitempty"`

	// Ties
	ClearA                  *float64 `json:"clear_a,omitempty" yaml:"clear_a,omitempty"`
	ClearB                  *float64 `json:"clear_b,omitempty" yaml:"clear_b,omitempty"`
	MemberHeight            *float64 `json:"member_height,omitempty" yaml:"member_height,omitempty"`
	Pitch                   *float64 `json:"pitch,omitempty" yaml:"pitch,omitempty"`
	HookMultiplier          *float64 `json:"hook_multiplier,omitempty" yaml:"hook_multiplier,omitempty"`
	BendDeductionMultiplier *float64 `json:"bend_deduction_multiplier,omitempty" yaml:"bend_deduction_multiplier,omitempty"`

	// Beam
	ClearSpan         *float64 `json:"clear_span,omitempty" yaml:"clear_span,omitempty"`
	DevelopmentLength *float64 `json:"development_length,omitempty" yaml:"development_length,omitempty"`
	MainBarCount      *int     `json:"main_bar_count,omitempty" yaml:"main_bar_count,omitempty"`

	// Column
	ClearHeight      *float64 `json:"clear_height,omitempty" yaml:"clear_height,omitempty"`
	LapLength        *float64 `json:"lap_length,omitempty" yaml:"lap_length,omitempty"`
	VerticalBarCount *int     `json:"vertical_bar_count,omitempty" yaml:"vertical_bar_count,omitempty"`
}

// Document is a parameter file. It holds either a single member at the top
// level or a list of members.
type Document struct {
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	Member `yaml:",inline"`

	Members []Member `json:"members,omitempty" yaml:"members,omitempty"`
}

// Batch is a decoded document ready for the schedule builder
type Batch struct {
	Project string
	Members []bbs.Input
}

// FormatFromPath detects the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("unsupported parameter file %q (use .yaml, .yml or .json)", path)
}

// ParseFormat parses a format name or media type
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	switch s {
	case "yaml", "yml", "application/yaml", "application/x-yaml", "text/yaml":
		return YAML, nil
	case "", "json", "application/json":
		return JSON, nil
	}
	return "", fmt.Errorf("unsupported parameter format %q", s)
}

// LoadFromFile loads a parameter document from a YAML or JSON file
func LoadFromFile(path string) (*Batch, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a parameter document and converts it to builder inputs.
// Unknown keys are rejected so that misspelled parameters are not silently
// dropped.
func Decode(r io.Reader, format Format) (*Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read parameters: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &bbs.ValidationError{Msg: "parameter document is empty"}
	}

	var doc Document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml parameters: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, errTrailing("yaml", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json parameters: %w", err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, errTrailing("json", err)
		}
	default:
		return nil, fmt.Errorf("unsupported parameter format %q", format)
	}

	return doc.Batch()
}

// errTrailing reports content after the first document of a parameter file
func errTrailing(format string, err error) error {
	if err != nil {
		return fmt.Errorf("decode %s parameters: trailing content: %w", format, err)
	}
	return fmt.Errorf("decode %s parameters: trailing content after the first document", format)
}

// Batch converts the document into builder inputs
func (d *Document) Batch() (*Batch, error) {
	single := d.Member.Type != ""

	switch {
	case single && len(d.Members) > 0:
		return nil, &bbs.ValidationError{Field: "type", Msg: "use either a top-level member or a members list, not both"}
	case !single && len(d.Members) == 0:
		return nil, &bbs.ValidationError{Field: "members", Msg: "no members defined"}
	}

	batch := &Batch{Project: d.Project}
	if single {
		in, err := d.Member.Input("")
		if err != nil {
			return nil, err
		}
		batch.Members = []bbs.Input{in}
		return batch, nil
	}

	for i, m := range d.Members {
		in, err := m.Input(fmt.Sprintf("members[%d].", i+1))
		if err != nil {
			return nil, err
		}
		batch.Members = append(batch.Members, in)
	}
	return batch, nil
}

// Input converts one member entry. Only the fields of its own member type
// are read. prefix qualifies field names in errors.
func (m Member) Input(prefix string) (bbs.Input, error) {
	mt, err := bbs.ParseMemberType(m.Type)
	if err != nil {
		return nil, qualify(prefix, err)
	}

	r := &reader{prefix: prefix}
	common := bbs.Common{
		Cover:       r.floatField("cover", m.Cover),
		BarDiameter: r.floatField("bar_diameter", m.BarDiameter),
	}

	var in bbs.Input
	switch mt {
	case bbs.Ties:
		in = bbs.TiesInput{
			Common:                  common,
			ClearA:                  r.floatField("clear_a", m.ClearA),
			ClearB:                  r.floatField("clear_b", m.ClearB),
			MemberHeight:            r.floatField("member_height", m.MemberHeight),
			Pitch:                   r.floatField("pitch", m.Pitch),
			HookMultiplier:          orDefault(m.HookMultiplier, DefaultHookMultiplier),
			BendDeductionMultiplier: orDefault(m.BendDeductionMultiplier, DefaultBendDeductionMultiplier),
		}
	case bbs.Beam:
		in = bbs.BeamInput{
			Common:            common,
			ClearSpan:         r.floatField("clear_span", m.ClearSpan),
			DevelopmentLength: r.floatField("development_length", m.DevelopmentLength),
			MainBarCount:      r.intField("main_bar_count", m.MainBarCount),
		}
	case bbs.Column:
		in = bbs.ColumnInput{
			Common:           common,
			ClearHeight:      r.floatField("clear_height", m.ClearHeight),
			LapLength:        r.floatField("lap_length", m.LapLength),
			VerticalBarCount: r.intField("vertical_bar_count", m.VerticalBarCount),
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	if err := in.Validate(); err != nil {
		return nil, qualify(prefix, err)
	}
	return in, nil
}

// reader collects the first missing required field
type reader struct {
	prefix string
	err    error
}

func (r *reader) floatField(name string, v *float64) float64 {
	if v == nil {
		r.missing(name)
		return 0
	}
	return *v
}

func (r *reader) intField(name string, v *int) int {
	if v == nil {
		r.missing(name)
		return 0
	}
	return *v
}

func (r *reader) missing(name string) {
	if r.err == nil {
		r.err = &bbs.ValidationError{Field: r.prefix + name, Msg: "missing required value"}
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func qualify(prefix string, err error) error {
	var vErr *bbs.ValidationError
	if prefix == "" || !errors.As(err, &vErr) || vErr.Field == "" {
		return err
	}
	return &bbs.ValidationError{Field: prefix + vErr.Field, Msg: vErr.Msg}
}
