package levelspec

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

// Vec is a top-left world position.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// RectSpec is an axis-aligned rectangle in world units.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BB converts to a chipmunk bounding box in screen space (B = min Y).
func (r RectSpec) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// LevelSpec describes one level: where the player starts, the static
// obstacles, the interactable props, and the interaction tunables. Props not
// used by a level are simply absent from its yaml.
type LevelSpec struct {
	Name      string     `yaml:"name"`
	Spawn     Vec        `yaml:"spawn"`
	Obstacles []RectSpec `yaml:"obstacles"`

	Pot   *Vec `yaml:"pot"`
	Stove *Vec `yaml:"stove"`
	Door  *Vec `yaml:"door"`
	Spoon *Vec `yaml:"spoon"`

	// PotHit is the drag-start region for the stirring gesture.
	PotHit *RectSpec `yaml:"pot_hit"`

	PickupRange     float64 `yaml:"pickup_range"`
	PlaceRange      float64 `yaml:"place_range"`
	OpenRange       float64 `yaml:"open_range"`
	StirRange       float64 `yaml:"stir_range"`
	CompleteDelayMS int     `yaml:"complete_delay_ms"`
}

// ObstacleBoxes returns the obstacle set as bounding boxes.
func (s *LevelSpec) ObstacleBoxes() []cp.BB {
	boxes := make([]cp.BB, len(s.Obstacles))
	for i, r := range s.Obstacles {
		boxes[i] = r.BB()
	}
	return boxes
}

// LoadSpec parses the named yaml file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("levelspec: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("levelspec: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadLevel loads a level definition by name ("cook", "door", "stir";
// .yaml optional).
func LoadLevel(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](withExt(name))
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
