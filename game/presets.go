package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

type presetFile struct {
	Presets []presetConfig `yaml:"presets"`
}

// presetConfig is the YAML shape of a variant definition.
type presetConfig struct {
	Name                string   `yaml:"name"`
	Board               []string `yaml:"board"`
	Escape              string   `yaml:"escape"`
	KingCapture         string   `yaml:"king_capture"`
	ThroneHostileToKing bool     `yaml:"throne_hostile_to_king"`
	ArmedKing           bool     `yaml:"armed_king"`
	ShieldWall          bool     `yaml:"shield_wall"`
	StalemateLoss       bool     `yaml:"stalemate_loss"`
	RepetitionLimit     int      `yaml:"repetition_limit"`
	MoveLimit           int      `yaml:"move_limit"`
}

func (pc presetConfig) toVariant() (*Variant, error) {
	v := &Variant{
		Name:                pc.Name,
		BoardLen:            uint8(len(pc.Board)),
		Layout:              pc.Board,
		ThroneHostileToKing: pc.ThroneHostileToKing,
		ArmedKing:           pc.ArmedKing,
		ShieldWall:          pc.ShieldWall,
		StalemateLoss:       pc.StalemateLoss,
		RepetitionLimit:     pc.RepetitionLimit,
		MoveLimit:           pc.MoveLimit,
	}
	switch pc.Escape {
	case "corner":
		v.Escape = CornerEscape
	case "edge":
		v.Escape = EdgeEscape
	default:
		return nil, v.fail("unknown escape rule %q", pc.Escape)
	}
	switch pc.KingCapture {
	case "four_sides":
		v.KingCapture = KingCaptureFourSides
	case "two_sides":
		v.KingCapture = KingCaptureTwoSides
	default:
		return nil, v.fail("unknown king capture rule %q", pc.KingCapture)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func loadPresets() (map[string]*Variant, error) {
	var file presetFile
	if err := yaml.Unmarshal(presetsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	presets := make(map[string]*Variant, len(file.Presets))
	for _, pc := range file.Presets {
		v, err := pc.toVariant()
		if err != nil {
			return nil, err
		}
		presets[v.Name] = v
	}
	return presets, nil
}

// NewVariant returns the named built-in rule set preset. The embedded
// presets are validated on first use; an unknown name is a
// ConfigurationError.
func NewVariant(name string) (*Variant, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	v, ok := presets[name]
	if !ok {
		return nil, &ConfigurationError{Variant: name, Reason: "no such preset"}
	}
	return v, nil
}

// PresetNames lists the built-in variants.
func PresetNames() []string {
	return []string{"brandubh", "tablut", "copenhagen"}
}
