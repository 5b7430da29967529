// Package renderer draws the fountain scene and turns drags into camera motion.
package renderer

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/engine/camera"
	"github.com/Faultbox/skyfountain/internal/engine/lighting"
	"github.com/Faultbox/skyfountain/internal/engine/particle"
	"github.com/Faultbox/skyfountain/internal/engine/scene"
	"github.com/Faultbox/skyfountain/internal/engine/shader"
	"github.com/Faultbox/skyfountain/internal/logger"
	"github.com/Faultbox/skyfountain/pkg/math"
)

// Resources are the encoded images passed to SurfaceCreated.
type Resources = scene.Resources

// Config holds renderer configuration.
type Config struct {
	ClearColor [4]float32
	Scene      scene.Config

	DragDivisor float32
	EyeHeight   float32
	EyeDistance float32

	// DragQueueSize bounds the drags pending between two frames.
	DragQueueSize int

	ParticlesPerFrame int
	AngleVariance     float32 // degrees
	SpeedVariance     float32

	// Seed for particle randomness.
	Seed int64
}

// DefaultConfig returns the demo's renderer configuration.
func DefaultConfig() Config {
	return Config{
		Scene:             scene.DefaultConfig(),
		DragDivisor:       16,
		EyeHeight:         1.5,
		EyeDistance:       5,
		DragQueueSize:     256,
		ParticlesPerFrame: 5,
		AngleVariance:     5,
		SpeedVariance:     1,
		Seed:              1,
	}
}

// Renderer draws the heightmap, the skybox and the particle fountain.
// All methods except HandleTouchDrag must run on the GL thread.
type Renderer struct {
	config Config
	log    *zap.Logger

	camera *camera.Camera
	drags  *camera.DragQueue
	lights *lighting.Rig

	shooters  []*particle.Shooter
	particles *particle.System

	projection    math.Mat4
	width, height int
	sized         bool

	heightmapProgram *shader.HeightmapProgram
	skyboxProgram    *shader.SkyboxProgram
	particleProgram  *shader.ParticleProgram

	scene *scene.Scene
}

// New creates a renderer. No GL calls are made until SurfaceCreated.
func New(cfg Config) *Renderer {
	return &Renderer{
		config:     cfg,
		log:        logger.Named("renderer"),
		camera:     camera.New(cfg.DragDivisor, cfg.EyeHeight, cfg.EyeDistance),
		drags:      camera.NewDragQueue(cfg.DragQueueSize),
		lights:     lighting.DefaultRig(),
		shooters:   particle.FountainShooters(cfg.AngleVariance, cfg.SpeedVariance, rand.New(rand.NewSource(cfg.Seed))),
		projection: math.Identity(),
	}
}

// SurfaceCreated initializes GL, compiles the programs and builds the scene.
// Any error is fatal to the session.
func (r *Renderer) SurfaceCreated(res Resources) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	var err error
	if r.heightmapProgram, err = shader.NewHeightmapProgram(); err != nil {
		r.Close()
		return err
	}
	if r.skyboxProgram, err = shader.NewSkyboxProgram(); err != nil {
		r.Close()
		return err
	}
	if r.particleProgram, err = shader.NewParticleProgram(); err != nil {
		r.Close()
		return err
	}

	if r.scene, err = scene.New(r.config.Scene, res); err != nil {
		r.Close()
		return fmt.Errorf("building scene: %w", err)
	}
	r.particles = r.scene.Particles.System

	return nil
}

// SurfaceChanged sets the viewport and recomputes the projection. Calls
// that repeat the current size are ignored.
func (r *Renderer) SurfaceChanged(width, height int) {
	if !r.sizeChanged(width, height) {
		return
	}
	r.resize(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("surface changed", zap.Int("width", width), zap.Int("height", height))
}

func (r *Renderer) sizeChanged(width, height int) bool {
	return !r.sized || width != r.width || height != r.height
}

func (r *Renderer) resize(width, height int) {
	r.sized = true
	r.width, r.height = width, height
	r.projection = ProjectionFor(width, height)
	r.camera.UpdateViews()
}

// Size returns the current surface size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// HandleTouchDrag queues a drag for the next frame. Safe to call from any goroutine.
func (r *Renderer) HandleTouchDrag(dx, dy float32) {
	if !r.drags.Push(math.Vec2{X: dx, Y: dy}) {
		r.log.Debug("drag dropped", zap.Uint64("dropped", r.drags.Dropped()))
	}
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// Frame is everything computed on the CPU for one frame.
type Frame struct {
	Time      float32
	Heightmap shader.HeightmapUniforms
	Skybox    math.Mat4
	Particles math.Mat4
}

// prepareFrame applies pending drags, emits new particles and computes
// every matrix for the frame at time now (seconds since start).
func (r *Renderer) prepareFrame(now float32) Frame {
	r.drags.Drain(r.camera)

	if r.particles != nil {
		for _, s := range r.shooters {
			s.AddParticles(r.particles, now, r.config.ParticlesPerFrame)
		}
	}

	view := r.camera.View()

	terrain := ComputeTransform(HeightmapModel(), view, r.projection)
	eye := r.lights.EyeSpace(view)

	return Frame{
		Time: now,
		Heightmap: shader.HeightmapUniforms{
			ModelView:           terrain.ModelView,
			ITModelView:         terrain.ITModelView,
			MVP:                 terrain.MVP,
			VectorToLight:       eye.VectorToLight,
			PointLightPositions: eye.Positions,
			PointLightColors:    eye.Colors,
		},
		Skybox:    SkyboxTransform(math.Identity(), r.camera.SkyboxView(), r.projection),
		Particles: ComputeTransform(math.Identity(), view, r.projection).MVP,
	}
}

// DrawFrame draws the heightmap, then the skybox behind it, then the
// particles blended on top.
func (r *Renderer) DrawFrame(now float32) {
	f := r.prepareFrame(now)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.drawHeightmap(&f)
	r.drawSkybox(&f)
	r.drawParticles(&f)
}

func (r *Renderer) drawHeightmap(f *Frame) {
	r.heightmapProgram.Use()
	r.heightmapProgram.SetUniforms(&f.Heightmap)
	r.scene.Heightmap.Draw()
}

func (r *Renderer) drawSkybox(f *Frame) {
	r.skyboxProgram.Use()
	r.skyboxProgram.SetUniforms(f.Skybox, r.scene.SkyboxTexture)

	// The sky is drawn at depth 1.0, which LESS would reject.
	gl.DepthFunc(gl.LEQUAL)
	r.scene.Skybox.Draw()
	gl.DepthFunc(gl.LESS)
}

func (r *Renderer) drawParticles(f *Frame) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DepthMask(false)

	r.particleProgram.Use()
	r.particleProgram.SetUniforms(f.Particles, f.Time, r.scene.ParticleTexture)
	r.scene.Particles.Draw()

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Close releases renderer resources. It is safe on a partially initialized renderer.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.scene != nil {
		r.scene.Destroy()
		r.scene = nil
		r.particles = nil
	}
	if r.heightmapProgram != nil {
		r.heightmapProgram.Delete()
		r.heightmapProgram = nil
	}
	if r.skyboxProgram != nil {
		r.skyboxProgram.Delete()
		r.skyboxProgram = nil
	}
	if r.particleProgram != nil {
		r.particleProgram.Delete()
		r.particleProgram = nil
	}
}
