package view3d

import (
	"math"

	"github.com/golang/geo/r3"

	"secview/internal/dataset"
)

// Orbit limits relative to the scene scale.
const (
	cameraDistance = 1.5
	minDistance    = 0.1
	maxDistance    = 3.0
)

// View owns the scene, the camera and its orbit controls, and the
// framebuffer frames are rendered into.
type View struct {
	Scene  *Scene
	Camera *Camera
	Orbit  *Orbit

	fb *Framebuffer
}

// NewView builds the scene for the whole dataset and frames it in a w x h
// pixel viewport.
func NewView(ds *dataset.Dataset, w, h int) *View {
	return NewSceneView(BuildScene(ds), w, h)
}

// NewSceneView places the camera outside the scene on +Z looking at the
// centre, and binds damped orbit controls to the centre.
func NewSceneView(s *Scene, w, h int) *View {
	cam := NewCamera(1)
	cam.SetViewport(w, h)
	cam.Near = math.Min(DefaultNear, s.Scale/100)
	cam.Far = math.Max(DefaultFar, s.Scale*10)
	cam.Position = s.Center.Add(r3.Vector{Z: s.Scale * cameraDistance})
	cam.LookAt(s.Center)

	o := NewOrbit(s.Center)
	o.EnableDamping = true
	o.DampingFactor = 0.05
	o.ScreenSpacePanning = false
	o.MinDistance = s.Scale * minDistance
	o.MaxDistance = s.Scale * maxDistance
	o.MaxPolarAngle = math.Pi / 2

	return &View{Scene: s, Camera: cam, Orbit: o, fb: NewFramebuffer(w, h)}
}

// Resize updates the camera aspect and the framebuffer before the next frame.
func (v *View) Resize(w, h int) {
	v.Camera.SetViewport(w, h)
	v.fb.Resize(w, h)
}

// Frame advances the orbit damping and renders the scene.
func (v *View) Frame() *Framebuffer {
	v.Orbit.Update(v.Camera)
	Render(v.fb, v.Scene, v.Camera)
	return v.fb
}

// Framebuffer returns the last rendered frame.
func (v *View) Framebuffer() *Framebuffer { return v.fb }
