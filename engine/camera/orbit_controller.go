package camera

import (
	"sync"

	"github.com/Carmen-Shannon/lux-go/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitControllerImpl is the single implementation of OrbitController.
// Input nudges the target spherical coordinates; Update(dt) eases the
// live coordinates toward those targets so camera motion carries
// inertia instead of snapping.
type orbitControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position mgl32.Vec3
	target   mgl32.Vec3

	// Live spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Goal spherical coordinates the damping eases toward
	goalRadius    float32
	goalAzimuth   float32
	goalElevation float32

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Speed settings
	orbitSpeed float32
	zoomSpeed  float32

	// damping is the exponential easing rate per second; higher values
	// converge faster.
	damping float32
}

// OrbitController defines the interface for orbit-style camera control.
//
// Orbit and Zoom adjust goal spherical coordinates around the target;
// Update(dt) eases the live coordinates toward the goals with
// exponential damping and recomputes the camera position. The position
// the camera reads therefore lags input by the damping time constant.
type OrbitController interface {
	// Position returns the current world-space camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Target returns the world-space point the camera orbits.
	//
	// Returns:
	//   - mgl32.Vec3: the orbit target
	Target() mgl32.Vec3

	// SetTarget sets the orbit target and recomputes the position.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// Orbit nudges the goal azimuth and elevation by the given input
	// deltas scaled by the orbit speed. Elevation is clamped to the
	// controller's limits.
	//
	// Parameters:
	//   - dAzimuth: horizontal input delta
	//   - dElevation: vertical input delta
	Orbit(dAzimuth, dElevation float32)

	// Zoom nudges the goal radius by the given input delta scaled by the
	// zoom speed, clamped to the radius limits. Positive deltas move the
	// camera closer.
	//
	// Parameters:
	//   - delta: zoom input delta
	Zoom(delta float32)

	// Update advances the damping by dt seconds, easing the live
	// spherical coordinates toward their goals and recomputing the
	// camera position. Call once per tick before the camera update.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// Radius returns the current (live) orbit radius.
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// Azimuth returns the current (live) azimuth in radians.
	//
	// Returns:
	//   - float32: the azimuth
	Azimuth() float32

	// Elevation returns the current (live) elevation in radians.
	//
	// Returns:
	//   - float32: the elevation
	Elevation() float32

	// SetRadius sets both the live and goal radius, clamped to the
	// radius limits, and recomputes the position.
	//
	// Parameters:
	//   - radius: the new radius
	SetRadius(radius float32)

	// SetAzimuth sets both the live and goal azimuth and recomputes the
	// position.
	//
	// Parameters:
	//   - azimuth: the new azimuth in radians
	SetAzimuth(azimuth float32)

	// SetElevation sets both the live and goal elevation, clamped to the
	// elevation limits, and recomputes the position.
	//
	// Parameters:
	//   - elevation: the new elevation in radians
	SetElevation(elevation float32)
}

// Compile-time interface compliance check
var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates a new orbit controller with viewer defaults:
// target at the origin, radius 5, azimuth and elevation 0, placing the
// camera at (0, 0, 5) looking down the -Z axis.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	cc := &orbitControllerImpl{
		mu:     &sync.Mutex{},
		target: mgl32.Vec3{0, 0, 0},

		radius:    5.0,
		azimuth:   0.0,
		elevation: 0.0,

		goalRadius:    5.0,
		goalAzimuth:   0.0,
		goalElevation: 0.0,

		minRadius:    1.5,
		maxRadius:    20.0,
		minElevation: -(math32.Pi/2 - 0.05),
		maxElevation: math32.Pi/2 - 0.05,

		orbitSpeed: 0.005,
		zoomSpeed:  0.25,

		damping: 10.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}

// updatePosition recomputes the camera position from the live spherical
// coordinates. Must be called whenever radius, azimuth, elevation, or
// target changes. Caller must hold the mutex.
func (cc *orbitControllerImpl) updatePosition() {
	cosElev := math32.Cos(cc.elevation)
	sinElev := math32.Sin(cc.elevation)
	cosAzim := math32.Cos(cc.azimuth)
	sinAzim := math32.Sin(cc.azimuth)

	cc.position = mgl32.Vec3{
		cc.target.X() + cc.radius*cosElev*sinAzim,
		cc.target.Y() + cc.radius*sinElev,
		cc.target.Z() + cc.radius*cosElev*cosAzim,
	}
}

func (cc *orbitControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *orbitControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *orbitControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = mgl32.Vec3{x, y, z}
	cc.updatePosition()
}

func (cc *orbitControllerImpl) Orbit(dAzimuth, dElevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.goalAzimuth += dAzimuth * cc.orbitSpeed
	cc.goalElevation = common.Clamp(
		cc.goalElevation+dElevation*cc.orbitSpeed,
		cc.minElevation, cc.maxElevation,
	)
}

func (cc *orbitControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.goalRadius = common.Clamp(
		cc.goalRadius-delta*cc.zoomSpeed,
		cc.minRadius, cc.maxRadius,
	)
}

func (cc *orbitControllerImpl) Update(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if dt <= 0 {
		return
	}

	// Exponential ease toward the goals; frame-rate independent.
	t := 1 - math32.Exp(-cc.damping*dt)
	cc.azimuth = common.Lerp(cc.azimuth, cc.goalAzimuth, t)
	cc.elevation = common.Lerp(cc.elevation, cc.goalElevation, t)
	cc.radius = common.Lerp(cc.radius, cc.goalRadius, t)

	cc.updatePosition()
}

func (cc *orbitControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *orbitControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *orbitControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *orbitControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(radius, cc.minRadius, cc.maxRadius)
	cc.goalRadius = cc.radius
	cc.updatePosition()
}

func (cc *orbitControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.goalAzimuth = azimuth
	cc.updatePosition()
}

func (cc *orbitControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = common.Clamp(elevation, cc.minElevation, cc.maxElevation)
	cc.goalElevation = cc.elevation
	cc.updatePosition()
}
