package editor

import (
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/config"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
	"github.com/Carmen-Shannon/oxy-scene/engine/primitive"
)

// shapeKeys lists the procedural add keys in the order they are checked.
var shapeKeys = []int{common.KeyB, common.KeyC, common.KeyS, common.KeyG, common.KeyP, common.KeyQ}

// modelKeys binds the digit keys to config.EditorConfig.Models by position.
var modelKeys = []int{common.Key1, common.Key2, common.Key3, common.Key4, common.Key5}

// newCatalog builds the procedural model templates placed by shapeKeys.
func newCatalog(cfg config.EditorConfig) map[int]model.Model {
	color := config.Color(cfg.DefaultColor)
	shape := func(name string, g mesh.Geometry, scale float32, opts ...model.ModelBuilderOption) model.Model {
		base := []model.ModelBuilderOption{
			model.WithName(name),
			model.WithGeometry(g),
			model.WithColor(color),
			model.WithUniformScale(scale),
		}
		return model.NewModel(append(base, opts...)...)
	}

	return map[int]model.Model{
		common.KeyB: shape("box", primitive.Box(2, 2, 2), cfg.BoxScale),
		common.KeyC: shape("cylinder", primitive.Cylinder(1, 0.5, 3, 20, 10), cfg.ObjectScale),
		common.KeyS: shape("sphere", primitive.Sphere(1, 20, 20), cfg.ObjectScale),
		common.KeyG: shape("geosphere", primitive.GeoSphere(1, 3), cfg.ObjectScale),
		common.KeyP: shape("plane", primitive.Grid(3, 3, 20, 20), cfg.ObjectScale, model.WithPosition(0, 0.5, 0)),
		common.KeyQ: shape("quad", primitive.Quad(2, 2), cfg.ObjectScale),
	}
}

// floor is the grid every editor session starts with.
func floor(cfg config.EditorConfig) model.Model {
	return model.NewModel(
		model.WithName("floor"),
		model.WithGeometry(primitive.Grid(6, 6, 30, 30)),
		model.WithColor(config.Color(cfg.DefaultColor)),
	)
}
