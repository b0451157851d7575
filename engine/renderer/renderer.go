package renderer

import (
	"fmt"

	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

// Renderer owns the objects of the scene and the geometry queued for the
// current frame, and forwards both to the backend once per frame.
type Renderer struct {
	backend     RendererBackend
	objects     []*metadata.Object
	packet      metadata.RenderPacket
	wireframe   bool
	initialized bool
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.backend.Initialize(appName, appWidth, appHeight); err != nil {
		return fmt.Errorf("failed to initialize renderer backend: %w", err)
	}
	r.initialized = true
	return nil
}

func (r *Renderer) Shutdown() error {
	r.ClearObjects()
	r.initialized = false
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

// SetWireframe switches every following draw to line rendering.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
}

// CreateObject returns a new drawable handle for mesh. The mesh is shared,
// not copied.
func (r *Renderer) CreateObject(mesh *metadata.Mesh) *metadata.Object {
	o := metadata.NewObject(core.IdentifierAcquireNewID(mesh), mesh)
	r.objects = append(r.objects, o)
	return o
}

// DestroyObject removes o from the scene.
func (r *Renderer) DestroyObject(o *metadata.Object) {
	for i, obj := range r.objects {
		if obj == o {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			if err := core.IdentifierReleaseID(o.ID); err != nil {
				core.LogWarn(err.Error())
			}
			return
		}
	}
}

// ClearObjects removes every object from the scene.
func (r *Renderer) ClearObjects() {
	for _, o := range r.objects {
		if err := core.IdentifierReleaseID(o.ID); err != nil {
			core.LogWarn(err.Error())
		}
	}
	r.objects = r.objects[:0]
}

func (r *Renderer) Objects() []*metadata.Object {
	return r.objects
}

// UploadMesh replaces the geometry of mesh.
func (r *Renderer) UploadMesh(mesh *metadata.Mesh, vertices []math.Vertex3D, indices []uint32) error {
	if !r.initialized {
		return fmt.Errorf("upload of mesh '%s': %w", mesh.Name, core.ErrNotInitialized)
	}
	if err := r.backend.CreateGeometry(mesh, vertices, indices); err != nil {
		return fmt.Errorf("upload of mesh '%s': %w", mesh.Name, err)
	}
	mesh.VertexCount = uint32(len(vertices))
	mesh.IndexCount = uint32(len(indices))
	mesh.Generation++
	return nil
}

// UploadConfig uploads a generated geometry configuration into a new mesh.
func (r *Renderer) UploadConfig(config *metadata.GeometryConfig) (*metadata.Mesh, error) {
	mesh := metadata.NewMesh(config.Name)
	if err := r.UploadMesh(mesh, config.Vertices, config.Indices); err != nil {
		return nil, err
	}
	return mesh, nil
}

// DrawMesh queues an indexed triangle draw of mesh for the current frame.
func (r *Renderer) DrawMesh(mesh *metadata.Mesh, model math.Mat4, albedo math.Vec3) {
	r.packet.Geometries = append(r.packet.Geometries, metadata.GeometryRenderData{
		Model:     model,
		Albedo:    albedo,
		Mesh:      mesh,
		Topology:  metadata.PrimitiveTopologyTriangleList,
		Wireframe: r.wireframe,
	})
}

// DrawLines queues a line list draw of mesh for the current frame. Lines
// ignore the wireframe switch.
func (r *Renderer) DrawLines(mesh *metadata.Mesh, model math.Mat4, albedo math.Vec3) {
	r.packet.Geometries = append(r.packet.Geometries, metadata.GeometryRenderData{
		Model:    model,
		Albedo:   albedo,
		Mesh:     mesh,
		Topology: metadata.PrimitiveTopologyLineList,
	})
}

// DrawFrame draws every visible object followed by the queued geometry, then
// clears the queue.
func (r *Renderer) DrawFrame(deltaTime float64) error {
	if !r.initialized {
		return core.ErrNotInitialized
	}
	r.packet.DeltaTime = deltaTime
	defer func() {
		r.packet.Geometries = r.packet.Geometries[:0]
	}()

	if err := r.backend.BeginFrame(deltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	for _, o := range r.objects {
		if !o.Visible || o.Mesh == nil || !o.Mesh.IsUploaded() {
			continue
		}
		r.backend.DrawGeometry(metadata.GeometryRenderData{
			Model:     o.Transform.GetLocal(),
			Albedo:    o.Colour,
			Mesh:      o.Mesh,
			Topology:  metadata.PrimitiveTopologyTriangleList,
			Wireframe: r.wireframe,
		})
	}
	for _, g := range r.packet.Geometries {
		r.backend.DrawGeometry(g)
	}
	if err := r.backend.EndFrame(deltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
