package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"retrofps/internal/components"
	"retrofps/internal/engine"
	"retrofps/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ErrInvalidScene is wrapped by every scene content error.
var ErrInvalidScene = errors.New("invalid scene")

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
	// Parent names another object in the file. Transform is then local to it.
	Parent     string            `json:"parent,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Inactive   bool              `json:"inactive,omitempty"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxMeshDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
	Color  string     `json:"color"`
}

type boxColliderDef struct {
	Type     string     `json:"type"`
	Size     [3]float32 `json:"size"`
	Offset   [3]float32 `json:"offset,omitempty"`
	Channels []string   `json:"channels,omitempty"`
}

type sphereColliderDef struct {
	Type     string     `json:"type"`
	Radius   float32    `json:"radius"`
	Offset   [3]float32 `json:"offset,omitempty"`
	Channels []string   `json:"channels,omitempty"`
}

type doorDef struct {
	Type                   string   `json:"type"`
	OpenAngle              *float32 `json:"openAngle,omitempty"`
	Duration               *float32 `json:"duration,omitempty"`
	Curve                  *string  `json:"curve,omitempty"`
	Panel                  string   `json:"panel,omitempty"`
	SwingAwayFromRequester bool     `json:"swingAwayFromRequester,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"DarkBrown": rl.DarkBrown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

var channelByName = map[string]engine.Channel{
	"Visibility": engine.ChannelVisibility,
	"Camera":     engine.ChannelCamera,
	"Pawn":       engine.ChannelPawn,
	"All":        engine.ChannelAll,
}

func parseChannels(names []string) (engine.Channel, error) {
	var mask engine.Channel
	for _, n := range names {
		ch, ok := channelByName[n]
		if !ok {
			return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidScene, n)
		}
		mask |= ch
	}
	return mask, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

// LoadScene reads a JSON scene file and adds its objects to the scene. Call
// Start afterwards.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if err := w.LoadSceneData(data); err != nil {
		return fmt.Errorf("load scene %s: %w", path, err)
	}
	return nil
}

// LoadSceneData adds the objects described by data. Nothing is added when
// any object fails to load.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	byName := make(map[string]*engine.GameObject, len(sf.Objects))

	for _, objDef := range sf.Objects {
		if objDef.Name == "" {
			return fmt.Errorf("%w: object without a name", ErrInvalidScene)
		}
		if _, dup := byName[objDef.Name]; dup {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidScene, objDef.Name)
		}

		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Active = !objDef.Inactive
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			if err := loadComponent(g, raw); err != nil {
				return fmt.Errorf("object %q: %w", objDef.Name, err)
			}
		}

		objects = append(objects, g)
		byName[g.Name] = g
	}

	for i, objDef := range sf.Objects {
		if objDef.Parent == "" {
			continue
		}
		parent, ok := byName[objDef.Parent]
		if !ok {
			return fmt.Errorf("%w: object %q has unknown parent %q", ErrInvalidScene, objDef.Name, objDef.Parent)
		}
		if isAncestor(objects[i], parent) {
			return fmt.Errorf("%w: object %q parent cycle", ErrInvalidScene, objDef.Name)
		}
		parent.AddChild(objects[i])
	}

	for _, g := range objects {
		w.Scene.AddGameObject(g)
	}
	logger.Log.Info("Scene loaded", zap.Int("objects", len(objects)))
	return nil
}

// isAncestor reports whether a is g or one of g's ancestors.
func isAncestor(a, g *engine.GameObject) bool {
	for cur := g; cur != nil; cur = cur.Parent {
		if cur == a {
			return true
		}
	}
	return false
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return fmt.Errorf("parse component: %w", err)
	}

	switch header.Type {
	case "BoxMesh":
		var def boxMeshDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse BoxMesh: %w", err)
		}
		mesh := components.NewBoxMesh(vec3(def.Size), lookupColor(def.Color))
		mesh.Offset = vec3(def.Offset)
		g.AddComponent(mesh)

	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse BoxCollider: %w", err)
		}
		channels, err := parseChannels(def.Channels)
		if err != nil {
			return err
		}
		col := components.NewBoxCollider(vec3(def.Size))
		col.Offset = vec3(def.Offset)
		col.Channels = channels
		g.AddComponent(col)

	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse SphereCollider: %w", err)
		}
		channels, err := parseChannels(def.Channels)
		if err != nil {
			return err
		}
		col := components.NewSphereCollider(def.Radius)
		col.Offset = vec3(def.Offset)
		col.Channels = channels
		g.AddComponent(col)

	case "Door":
		var def doorDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse Door: %w", err)
		}
		cfg := components.DefaultDoorConfig()
		if def.OpenAngle != nil {
			cfg.OpenAngle = *def.OpenAngle
		}
		if def.Duration != nil {
			cfg.Duration = *def.Duration
		}
		if def.Curve != nil {
			cfg.Curve = *def.Curve
		}
		cfg.Panel = def.Panel
		cfg.SwingAwayFromRequester = def.SwingAwayFromRequester
		g.AddComponent(components.NewDoor(cfg))

	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse Script: %w", err)
		}
		comp := engine.CreateScript(def.Name, def.Props)
		if comp == nil {
			return fmt.Errorf("%w: unknown script %q", ErrInvalidScene, def.Name)
		}
		g.AddComponent(comp)

	default:
		return fmt.Errorf("%w: unknown component type %q", ErrInvalidScene, header.Type)
	}
	return nil
}
