// Package renderer plans and draws the scene with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/shader"
	"github.com/Faultbox/sceneview/internal/engine/shader/shaders"
	"github.com/Faultbox/sceneview/internal/engine/texture"
	"github.com/Faultbox/sceneview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	CubeTexture   string
	GroundTexture string
	SkyboxFaces   texture.CubeFaces
}

// gpuMesh is an uploaded mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

type objectUniforms struct {
	model, view, projection int32
	useTexture, objectColor int32
	lightDir, lightColor    int32
	viewPos                 int32
}

type skyboxUniforms struct {
	view, projection int32
}

// Renderer owns every GPU object the viewer draws with.
type Renderer struct {
	config Config

	objectProgram uint32
	skyboxProgram uint32
	objectLoc     objectUniforms
	skyboxLoc     skyboxUniforms

	meshes   [meshCount]gpuMesh
	textures [textureCount]uint32
	skyTex   uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(ClearColor.X, ClearColor.Y, ClearColor.Z, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	r.createPrograms()

	if err := r.createMeshes(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create meshes: %w", err)
	}

	r.textures[TextureCube] = texture.Load2D(cfg.CubeTexture)
	r.textures[TextureGround] = texture.Load2D(cfg.GroundTexture)
	r.skyTex = texture.LoadCubemap(cfg.SkyboxFaces)

	return r, nil
}

// createPrograms compiles both programs. A broken program is logged and kept,
// so the frame still runs and the affected objects simply do not appear.
func (r *Renderer) createPrograms() {
	var err error

	r.objectProgram, err = shader.CompileProgram(shaders.ObjectVertexShader, shaders.ObjectFragmentShader)
	if err != nil {
		logger.Error("object shader failed", zap.Error(err))
	}
	r.objectLoc = objectUniforms{
		model:       shader.GetUniform(r.objectProgram, "uModel"),
		view:        shader.GetUniform(r.objectProgram, "uView"),
		projection:  shader.GetUniform(r.objectProgram, "uProjection"),
		useTexture:  shader.GetUniform(r.objectProgram, "uUseTexture"),
		objectColor: shader.GetUniform(r.objectProgram, "uObjectColor"),
		lightDir:    shader.GetUniform(r.objectProgram, "uLightDir"),
		lightColor:  shader.GetUniform(r.objectProgram, "uLightColor"),
		viewPos:     shader.GetUniform(r.objectProgram, "uViewPos"),
	}
	gl.UseProgram(r.objectProgram)
	gl.Uniform1i(shader.GetUniform(r.objectProgram, "uTexture"), 0)

	r.skyboxProgram, err = shader.CompileProgram(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if err != nil {
		logger.Error("skybox shader failed", zap.Error(err))
	}
	r.skyboxLoc = skyboxUniforms{
		view:       shader.GetUniform(r.skyboxProgram, "uView"),
		projection: shader.GetUniform(r.skyboxProgram, "uProjection"),
	}
	gl.UseProgram(r.skyboxProgram)
	gl.Uniform1i(shader.GetUniform(r.skyboxProgram, "uSkybox"), 0)

	gl.UseProgram(0)
	logger.Debug("shader programs created",
		zap.Uint32("object", r.objectProgram),
		zap.Uint32("skybox", r.skyboxProgram),
	)
}

func (r *Renderer) createMeshes() error {
	sphere, err := mesh.Sphere(mesh.DefaultSphereRadius, mesh.DefaultSphereSectors, mesh.DefaultSphereStacks)
	if err != nil {
		return err
	}

	r.meshes[MeshGround] = uploadMesh(mesh.Ground())
	r.meshes[MeshCube] = uploadMesh(mesh.Cube())
	r.meshes[MeshPyramid] = uploadMesh(mesh.Pyramid())
	r.meshes[MeshSphere] = uploadMesh(sphere)
	r.meshes[MeshSkybox] = uploadMesh(mesh.Skybox())
	return nil
}

// uploadMesh copies a mesh into a new VAO with its vertex and index buffers.
func uploadMesh(m *mesh.Mesh) gpuMesh {
	g := gpuMesh{
		count:   int32(m.DrawCount()),
		indexed: m.Indexed(),
	}
	data := m.Interleave()
	stride := int32(m.Layout.Stride() * 4)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	if g.indexed {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
	}

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	if m.Layout == mesh.LayoutFull {
		// Normal (location = 1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
		gl.EnableVertexAttribArray(1)
		// TexCoord (location = 2)
		gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
		gl.EnableVertexAttribArray(2)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if g.indexed {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	logger.Debug("mesh uploaded",
		zap.String("name", m.Name),
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("count", g.count),
		zap.Uint32("vao", g.vao),
	)
	return g
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	if g.indexed {
		gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
}

func (g *gpuMesh) release() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	*g = gpuMesh{}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")

	for i := range r.meshes {
		r.meshes[i].release()
	}
	for i := range r.textures {
		if r.textures[i] != 0 {
			gl.DeleteTextures(1, &r.textures[i])
			r.textures[i] = 0
		}
	}
	if r.skyTex != 0 {
		gl.DeleteTextures(1, &r.skyTex)
		r.skyTex = 0
	}
	if r.objectProgram != 0 {
		gl.DeleteProgram(r.objectProgram)
		r.objectProgram = 0
	}
	if r.skyboxProgram != 0 {
		gl.DeleteProgram(r.skyboxProgram)
		r.skyboxProgram = 0
	}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Render clears the framebuffer and draws the plan: lit objects first, then the sky.
func (r *Renderer) Render(plan *FramePlan) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.objectProgram)
	gl.UniformMatrix4fv(r.objectLoc.view, 1, false, plan.View.Ptr())
	gl.UniformMatrix4fv(r.objectLoc.projection, 1, false, plan.Projection.Ptr())
	gl.Uniform3f(r.objectLoc.lightDir, plan.Light.Direction.X, plan.Light.Direction.Y, plan.Light.Direction.Z)
	gl.Uniform3f(r.objectLoc.lightColor, plan.Light.Color.X, plan.Light.Color.Y, plan.Light.Color.Z)
	gl.Uniform3f(r.objectLoc.viewPos, plan.ViewPos.X, plan.ViewPos.Y, plan.ViewPos.Z)
	gl.ActiveTexture(gl.TEXTURE0)

	for i := range plan.Draws {
		d := &plan.Draws[i]
		gl.UniformMatrix4fv(r.objectLoc.model, 1, false, d.Model.Ptr())
		if d.UseTexture() {
			gl.Uniform1i(r.objectLoc.useTexture, 1)
			gl.BindTexture(gl.TEXTURE_2D, r.textures[d.Texture])
		} else {
			gl.Uniform1i(r.objectLoc.useTexture, 0)
			gl.Uniform3f(r.objectLoc.objectColor, d.Color.X, d.Color.Y, d.Color.Z)
		}
		r.meshes[d.Mesh].draw()
	}

	// Sky fragments sit at depth 1.0, which LESS would reject against the cleared buffer
	gl.DepthFunc(gl.LEQUAL)
	gl.UseProgram(r.skyboxProgram)
	gl.UniformMatrix4fv(r.skyboxLoc.view, 1, false, plan.SkyView.Ptr())
	gl.UniformMatrix4fv(r.skyboxLoc.projection, 1, false, plan.Projection.Ptr())
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.skyTex)
	r.meshes[MeshSkybox].draw()
	gl.DepthFunc(gl.LESS)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ReadPixels returns the framebuffer as tightly packed RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}
