package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControllerOption is a function that configures an orbit controller during construction.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTarget is an option builder that sets the orbit target.
//
// Parameters:
//   - x, y, z: target components
//
// Returns:
//   - OrbitControllerOption: a function that applies the target option to the controller
func WithTarget(x, y, z float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.target = mgl32.Vec3{x, y, z}
	}
}

// WithRadius is an option builder that sets the initial orbit radius.
// Both the live and goal radius are set so construction does not trigger
// a zoom animation.
//
// Parameters:
//   - radius: the orbit radius
//
// Returns:
//   - OrbitControllerOption: a function that applies the radius option to the controller
func WithRadius(radius float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.radius = radius
		cc.goalRadius = radius
	}
}

// WithAzimuth is an option builder that sets the initial azimuth in radians.
//
// Parameters:
//   - azimuth: the azimuth in radians
//
// Returns:
//   - OrbitControllerOption: a function that applies the azimuth option to the controller
func WithAzimuth(azimuth float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.azimuth = azimuth
		cc.goalAzimuth = azimuth
	}
}

// WithElevation is an option builder that sets the initial elevation in radians.
//
// Parameters:
//   - elevation: the elevation in radians
//
// Returns:
//   - OrbitControllerOption: a function that applies the elevation option to the controller
func WithElevation(elevation float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.elevation = elevation
		cc.goalElevation = elevation
	}
}

// WithRadiusLimits is an option builder that sets the minimum and maximum
// orbit radius.
//
// Parameters:
//   - minRadius: the smallest allowed radius
//   - maxRadius: the largest allowed radius
//
// Returns:
//   - OrbitControllerOption: a function that applies the radius limits to the controller
func WithRadiusLimits(minRadius, maxRadius float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.minRadius = minRadius
		cc.maxRadius = maxRadius
	}
}

// WithElevationLimits is an option builder that sets the minimum and maximum
// elevation in radians.
//
// Parameters:
//   - minElevation: the lowest allowed elevation
//   - maxElevation: the highest allowed elevation
//
// Returns:
//   - OrbitControllerOption: a function that applies the elevation limits to the controller
func WithElevationLimits(minElevation, maxElevation float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.minElevation = minElevation
		cc.maxElevation = maxElevation
	}
}

// WithOrbitSpeed is an option builder that sets the orbit input scale.
//
// Parameters:
//   - speed: radians of goal change per unit of input delta
//
// Returns:
//   - OrbitControllerOption: a function that applies the orbit speed option to the controller
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithZoomSpeed is an option builder that sets the zoom input scale.
//
// Parameters:
//   - speed: world units of goal radius change per unit of input delta
//
// Returns:
//   - OrbitControllerOption: a function that applies the zoom speed option to the controller
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithDamping is an option builder that sets the exponential easing rate.
// Higher values make the camera settle faster; zero disables easing
// progress entirely.
//
// Parameters:
//   - damping: the easing rate per second
//
// Returns:
//   - OrbitControllerOption: a function that applies the damping option to the controller
func WithDamping(damping float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.damping = damping
	}
}
