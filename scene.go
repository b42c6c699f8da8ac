package main

// SceneDescriptor identifies one of the fixed visual compositions. The
// ordered table below is process-wide configuration; nothing mutates it at
// runtime.
type SceneDescriptor struct {
	Id   int
	Name string
}

var SceneTable = []SceneDescriptor{
	{0, "Flower of Life"},
	{1, "Vector Field"},
	{2, "Dimensional Planes"},
	{3, "Voxel Grid"},
	{4, "Golden Spiral"},
}

// SceneCount is the N of the scheduler's modulo arithmetic.
var SceneCount = len(SceneTable)

// Scene is one composition of generators. A scene owns its drawables and
// their geometry buffers exclusively; they are allocated when the scene is
// built (mounted) and garbage once the orchestrator drops the scene.
type Scene interface {
	Descriptor() SceneDescriptor

	// Step recomputes the animated geometry for the shared clock value and
	// propagates opacity to every owned drawable. scale is a uniform factor
	// applied to all positions; during a crossfade it follows the opacity
	// ramp so a scene grows in as it fades in.
	Step(now float64, opacity float64, scale float64)

	Drawables() []*Drawable

	// Invalidate forces a transparency recompute on every owned drawable.
	// Called on transition edges, see Orchestrator.
	Invalidate()
}

// NewScene builds the composition for a descriptor.
func NewScene(desc SceneDescriptor) Scene {
	switch desc.Id {
	case 0:
		return NewFlowerScene(desc)
	case 1:
		return NewFieldScene(desc)
	case 2:
		return NewPlanesScene(desc)
	case 3:
		return NewVoxelScene(desc)
	case 4:
		return NewSpiralScene(desc)
	default:
		panic("unhandled default case")
	}
}

// sceneBase carries the bookkeeping every composition shares.
type sceneBase struct {
	desc      SceneDescriptor
	drawables []*Drawable
}

func (s *sceneBase) Descriptor() SceneDescriptor {
	return s.desc
}

func (s *sceneBase) Drawables() []*Drawable {
	return s.drawables
}

func (s *sceneBase) Invalidate() {
	for _, d := range s.drawables {
		d.Invalidate()
	}
}

func (s *sceneBase) setOpacity(opacity float64) {
	for _, d := range s.drawables {
		d.SetOpacity(opacity)
	}
}

func (s *sceneBase) add(d *Drawable) *Drawable {
	s.drawables = append(s.drawables, d)
	return d
}
