package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains rendering configuration. It is passed explicitly so
// renders stay pure and reproducible; there is no global render state.
type RenderConfig struct {
	MaxDepth   int // Maximum reflection/refraction recursion depth (0 = world.DefaultMaxDepth)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:   world.DefaultMaxDepth,
		NumWorkers: 0,
	}
}

// Render traces one ray per pixel of the camera's grid through the world
// and collects the results into a canvas, using the default configuration.
func Render(w *world.World, camera *Camera) *canvas.Canvas {
	return RenderWithConfig(w, camera, DefaultRenderConfig(), nil)
}

// RenderWithConfig renders with explicit configuration and optional
// progress logging. The world and camera are read-only for the duration, so
// workers each own a disjoint set of canvas rows and write without
// synchronization.
func RenderWithConfig(w *world.World, camera *Camera, config RenderConfig, logger core.Logger) *canvas.Canvas {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxDepth := config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = world.DefaultMaxDepth
	}

	img := canvas.New(camera.HSize, camera.VSize)

	if logger != nil {
		logger.Printf("Rendering %dx%d with %d workers...\n", camera.HSize, camera.VSize, numWorkers)
	}

	rows := make(chan int, camera.VSize)
	for y := 0; y < camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(w, camera, img, y, maxDepth)
			}
		}()
	}
	wg.Wait()

	if logger != nil {
		logger.Printf("Render complete: %d pixels\n", camera.HSize*camera.VSize)
	}
	return img
}

// renderRow traces every pixel of one canvas row. Rows never overlap, so
// this is safe to run concurrently.
func renderRow(w *world.World, camera *Camera, img *canvas.Canvas, y, maxDepth int) {
	for x := 0; x < camera.HSize; x++ {
		ray := camera.RayForPixel(x, y)
		color := w.ColorAt(ray, maxDepth)
		img.WritePixel(x, y, color)
	}
}
