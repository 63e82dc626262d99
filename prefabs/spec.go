package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/common"
	"gopkg.in/yaml.v3"
)

const (
	SkellyFile = "skelly.yaml"
	PartsFile  = "parts.yaml"
	LevelFile  = "level.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GridSpec is a position on the map grid, in cells.
type GridSpec struct {
	I float64 `yaml:"i"`
	J float64 `yaml:"j"`
}

func (g GridSpec) World() cp.Vector {
	return common.Grid(g.I, g.J)
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

type RequestSpec struct {
	Clip   string `yaml:"clip"`
	Repeat bool   `yaml:"repeat"`
}

func (r RequestSpec) Request() (animation.Request, error) {
	if r.Clip == "" {
		return animation.Request{Clip: animation.FirstClip}, nil
	}
	clip, err := animation.ParseClip(r.Clip)
	if err != nil {
		return animation.Request{}, err
	}
	return animation.Request{Clip: clip, Repeat: r.Repeat}, nil
}

// FormSpec binds one skeleton form to the scene rendered for it and the
// inventory needed to grow into it.
type FormSpec struct {
	Form      string         `yaml:"form"`
	Archetype string         `yaml:"archetype"`
	Scene     string         `yaml:"scene"`
	Offset    VectorSpec     `yaml:"offset"`
	Requires  map[string]int `yaml:"requires"`
}

type SkellySpec struct {
	Name      string             `yaml:"name"`
	Start     GridSpec           `yaml:"start"`
	WalkSpeed float64            `yaml:"walk_speed"`
	RunSpeed  float64            `yaml:"run_speed"`
	StartForm string             `yaml:"start_form"`
	Initial   RequestSpec        `yaml:"initial"`
	Collider  ColliderSpec       `yaml:"collider"`
	Clips     map[string]float64 `yaml:"clips"`
	Forms     []FormSpec         `yaml:"forms"`
}

func LoadSkellySpec() (*SkellySpec, error) {
	spec, err := LoadSpec[SkellySpec](SkellyFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Form returns the spec of the named form.
func (s *SkellySpec) Form(name string) (FormSpec, bool) {
	for _, f := range s.Forms {
		if f.Form == name {
			return f, true
		}
	}
	return FormSpec{}, false
}

// Catalogs builds one catalog per form, all owned by owner. Only the
// catalog of active is activated.
func (s *SkellySpec) Catalogs(owner uint64, active animation.Archetype) ([]*animation.Catalog, error) {
	out := make([]*animation.Catalog, 0, len(s.Forms))
	for _, f := range s.Forms {
		archetype, err := animation.ParseArchetype(f.Archetype)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s form %s: %w", SkellyFile, f.Form, err)
		}
		c := animation.NewCatalog(f.Scene, archetype, owner)
		c.Activated = archetype == active
		for name, seconds := range s.Clips {
			clip, err := animation.ParseClip(name)
			if err != nil {
				return nil, fmt.Errorf("prefabs: %s clips: %w", SkellyFile, err)
			}
			if err := c.Register(clip, animation.Seconds(seconds), ClipRef(f.Scene, clip)); err != nil {
				return nil, fmt.Errorf("prefabs: %s form %s: %w", SkellyFile, f.Form, err)
			}
		}
		out = append(out, c)
	}
	return out, nil
}

type PartSpec struct {
	Archetype string     `yaml:"archetype"`
	Scene     string     `yaml:"scene"`
	Offset    VectorSpec `yaml:"offset"`
}

type BonePackSpec struct {
	Scene    string       `yaml:"scene"`
	Position GridSpec     `yaml:"position"`
	Radius   float64      `yaml:"radius"`
	Items    []string     `yaml:"items"`
	Offsets  []VectorSpec `yaml:"offsets"`
}

type DebugSpawnSpec struct {
	Archetype string  `yaml:"archetype"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
}

type DebugSpec struct {
	Bones int              `yaml:"bones"`
	Spawn []DebugSpawnSpec `yaml:"spawn"`
}

type PartsSpec struct {
	ClipDuration float64      `yaml:"clip_duration"`
	Spin         float64      `yaml:"spin"`
	Radius       float64      `yaml:"radius"`
	Parts        []PartSpec   `yaml:"parts"`
	Pack         BonePackSpec `yaml:"pack"`
	Debug        DebugSpec    `yaml:"debug"`
}

func LoadPartsSpec() (*PartsSpec, error) {
	spec, err := LoadSpec[PartsSpec](PartsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Part returns the spec of the part rendered for archetype a.
func (s *PartsSpec) Part(a animation.Archetype) (PartSpec, bool) {
	for _, p := range s.Parts {
		if p.Archetype == a.String() {
			return p, true
		}
	}
	return PartSpec{}, false
}

// Catalogs builds the shared single-clip catalogs of every part.
func (s *PartsSpec) Catalogs() ([]*animation.Catalog, error) {
	out := make([]*animation.Catalog, 0, len(s.Parts))
	for _, p := range s.Parts {
		archetype, err := animation.ParseArchetype(p.Archetype)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", PartsFile, err)
		}
		c := animation.NewCatalog(p.Scene, archetype, 0)
		if err := c.Register(animation.FirstClip, animation.Seconds(s.ClipDuration), ClipRef(p.Scene, animation.FirstClip)); err != nil {
			return nil, fmt.Errorf("prefabs: %s part %s: %w", PartsFile, p.Archetype, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// PackItems parses the archetypes a bone pack scatters.
func (s *PartsSpec) PackItems() ([]animation.Archetype, error) {
	items := make([]animation.Archetype, 0, len(s.Pack.Items))
	for _, name := range s.Pack.Items {
		a, err := animation.ParseArchetype(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s pack: %w", PartsFile, err)
		}
		items = append(items, a)
	}
	return items, nil
}

type RoomSpec struct {
	Name string `yaml:"name"`
	I    [2]int `yaml:"i"`
	J    [2]int `yaml:"j"`
}

type ChainSpec struct {
	Position GridSpec `yaml:"position"`
	Radius   float64  `yaml:"radius"`
	Hint     string   `yaml:"hint"`
}

type GateSpec struct {
	Position GridSpec `yaml:"position"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Rotation float64  `yaml:"rotation"`
	Step     float64  `yaml:"step"`
	Limit    float64  `yaml:"limit"`
	Requires string   `yaml:"requires"`
}

type EndZoneSpec struct {
	Position GridSpec `yaml:"position"`
	Size     float64  `yaml:"size"`
	Text     string   `yaml:"text"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	Scale      float64 `yaml:"scale"`
}

type LevelSpec struct {
	Name     string      `yaml:"name"`
	Script   string      `yaml:"script"`
	TileSize float64     `yaml:"tile_size"`
	Rooms    []RoomSpec  `yaml:"rooms"`
	Chain    ChainSpec   `yaml:"chain"`
	Gate     GateSpec    `yaml:"gate"`
	EndZone  EndZoneSpec `yaml:"end_zone"`
	Camera   CameraSpec  `yaml:"camera"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ClipRef names the n-th animation of a scene file.
func ClipRef(scene string, clip animation.ClipID) animation.ClipRef {
	return animation.ClipRef(fmt.Sprintf("%s#Animation%d", scene, int(clip)))
}

