package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/lux-go/common"
	"github.com/Carmen-Shannon/lux-go/engine"
	"github.com/Carmen-Shannon/lux-go/engine/camera"
	"github.com/Carmen-Shannon/lux-go/engine/geometry"
	"github.com/Carmen-Shannon/lux-go/engine/renderer"
	"github.com/Carmen-Shannon/lux-go/engine/scene"
	"github.com/Carmen-Shannon/lux-go/engine/window"
)

func main() {
	width := flag.Int("width", 1280, "window width in pixels")
	height := flag.Int("height", 720, "window height in pixels")
	modelPath := flag.String("model", "", "path to a glTF/GLB model to view (default: torus knot)")
	msaa := flag.Int("msaa", 4, "MSAA sample count (1, 4, 8, or 16)")
	vsync := flag.Bool("vsync", true, "synchronize presentation to the display refresh rate")
	software := flag.Bool("software", false, "force the software (fallback) adapter")
	profile := flag.Bool("profile", false, "log FPS and memory stats once per second")
	frameLimit := flag.Float64("fps", 0, "render frame rate cap (0 = uncapped)")
	flag.Parse()

	msaaCount, err := msaaSampleCount(*msaa)
	if err != nil {
		log.Fatalf("invalid -msaa value: %v", err)
	}
	presentMode := renderer.PresentModeVSync
	if !*vsync {
		presentMode = renderer.PresentModeUncapped
	}

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle("Lux - Material Viewer"),
		window.WithSize(*width, *height),
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	// ── Renderer ────────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaaCount),
		renderer.WithForceSoftwareRenderer(*software),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	// ── Camera ──────────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithController(camera.NewOrbitController()),
	)

	// ── Mesh ────────────────────────────────────────────────────────────
	mesh := geometry.NewTorusKnot()
	if *modelPath != "" {
		mesh, err = geometry.LoadGLTF(*modelPath)
		if err != nil {
			log.Fatalf("Failed to load model %q: %v", *modelPath, err)
		}
	}

	// ── Scene ───────────────────────────────────────────────────────────
	sc := scene.NewScene(
		scene.WithName("viewer"),
		scene.WithRenderer(r),
		scene.WithCamera(cam),
		scene.WithMesh(mesh),
	)
	if err := sc.InitGPU(); err != nil {
		log.Fatalf("Failed to initialize GPU resources: %v", err)
	}

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
		engine.WithTickRate(60),
		engine.WithProfiling(*profile),
		engine.WithRenderFrameLimit(*frameLimit),
	)

	// ── Input Handling ──────────────────────────────────────────────────
	setupViewerInput(eng, sc)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Lux - Material Viewer                               ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Camera:  Left-mouse drag=Orbit  Scroll=Zoom         ║")
	fmt.Println("║  Select:  A/G/B=Albedo R/G/B  M=Metalness            ║")
	fmt.Println("║           R=Roughness  X/Y/Z=Light position          ║")
	fmt.Println("║  Adjust:  Up/Down arrows (hold Shift for 4x)         ║")
	fmt.Println("║  Space:   Toggle auto-rotation                       ║")
	fmt.Println("║  Esc:     Quit                                       ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Println("Starting Lux Material Viewer")
	eng.Run()

	sc.Release()
	r.Release()
}

// msaaSampleCount maps the -msaa flag value to a sample count.
//
// Parameters:
//   - samples: the flag value (1, 4, 8, or 16)
//
// Returns:
//   - renderer.MSAASampleCount: the matching sample count
//   - error: an error if the value is not a supported count
func msaaSampleCount(samples int) (renderer.MSAASampleCount, error) {
	switch samples {
	case 1:
		return renderer.MSAAOff, nil
	case 4:
		return renderer.MSAA4x, nil
	case 8:
		return renderer.MSAA8x, nil
	case 16:
		return renderer.MSAA16x, nil
	default:
		return 0, fmt.Errorf("unsupported sample count %d (expected 1, 4, 8, or 16)", samples)
	}
}

// setupViewerInput wires the parameter panel (letter keys select a parameter,
// held arrow keys adjust it through the scene's clamped parameter writes),
// left-mouse drag orbit, scroll zoom, and the auto-rotation toggle.
//
// Parameters:
//   - eng: the engine instance providing window callbacks and tick
//   - sc: the scene whose parameters the panel edits
func setupViewerInput(eng engine.Engine, sc scene.Scene) {
	keyState := make(map[uint32]bool)
	selected := scene.ParameterRoughness

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		keyState[keyCode] = true

		switch keyCode {
		case common.KeyA:
			selected = scene.ParameterAlbedoR
		case common.KeyG:
			selected = scene.ParameterAlbedoG
		case common.KeyB:
			selected = scene.ParameterAlbedoB
		case common.KeyM:
			selected = scene.ParameterMetalness
		case common.KeyR:
			selected = scene.ParameterRoughness
		case common.KeyX:
			selected = scene.ParameterLightX
		case common.KeyY:
			selected = scene.ParameterLightY
		case common.KeyZ:
			selected = scene.ParameterLightZ
		case common.KeySpace:
			sc.SetAutoRotate(!sc.AutoRotate())
			if sc.AutoRotate() {
				fmt.Println("[Viewer] Auto-rotation ON")
			} else {
				fmt.Println("[Viewer] Auto-rotation OFF")
			}
			return
		default:
			return
		}
		fmt.Printf("[Viewer] Selected %s = %.3f\n", selected, parameterValue(sc, selected))
	})

	eng.Window().SetKeyUpCallback(func(keyCode uint32) {
		keyState[keyCode] = false
	})

	var dragging bool
	var lastX, lastY int32

	eng.Window().SetMouseDownCallback(func(x, y int32) {
		dragging = true
		lastX, lastY = x, y
	})

	eng.Window().SetMouseUpCallback(func(_, _ int32) {
		dragging = false
	})

	eng.Window().SetMouseMoveCallback(func(x, y int32) {
		if !dragging {
			return
		}
		dx := float32(x - lastX)
		dy := float32(y - lastY)
		sc.Camera().Controller().Orbit(dx, -dy)
		lastX, lastY = x, y
	})

	eng.Window().SetScrollCallback(func(delta float32) {
		sc.Camera().Controller().Zoom(delta)
	})

	eng.SetTickCallback(func(dt float32) {
		dir := float32(0)
		if keyState[common.KeyUp] {
			dir += 1
		}
		if keyState[common.KeyDown] {
			dir -= 1
		}
		if dir == 0 {
			return
		}

		rate := parameterRate(selected)
		if keyState[common.KeyLeftShift] || keyState[common.KeyRightShift] {
			rate *= 4
		}

		sc.ApplyParameter(scene.ParameterUpdate{
			Parameter: selected,
			Value:     parameterValue(sc, selected) + dir*rate*dt,
		})
	})
}

// parameterValue reads the current value of a parameter from its owning
// scene component.
//
// Parameters:
//   - sc: the scene to read from
//   - p: the parameter to read
//
// Returns:
//   - float32: the parameter's current value
func parameterValue(sc scene.Scene, p scene.Parameter) float32 {
	switch p {
	case scene.ParameterAlbedoR:
		return sc.Material().Albedo().X()
	case scene.ParameterAlbedoG:
		return sc.Material().Albedo().Y()
	case scene.ParameterAlbedoB:
		return sc.Material().Albedo().Z()
	case scene.ParameterMetalness:
		return sc.Material().Metalness()
	case scene.ParameterRoughness:
		return sc.Material().Roughness()
	case scene.ParameterLightX:
		return sc.Light().Position().X()
	case scene.ParameterLightY:
		return sc.Light().Position().Y()
	case scene.ParameterLightZ:
		return sc.Light().Position().Z()
	}
	return 0
}

// parameterRate returns the adjustment rate in units per second for held
// arrow keys. Light axes span a much wider range than the unit-interval
// material parameters, so they move faster.
//
// Parameters:
//   - p: the parameter being adjusted
//
// Returns:
//   - float32: the adjustment rate in units per second
func parameterRate(p scene.Parameter) float32 {
	switch p {
	case scene.ParameterLightX, scene.ParameterLightY, scene.ParameterLightZ:
		return 5.0
	default:
		return 0.5
	}
}
