package viewport_test

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

func ExampleViewport_WorldFromScreen() {
	vp := viewport.New(config.Default())
	vp.ZoomBy(1)
	vp.PanBy(10, 0)

	world := vp.WorldFromScreen(floor.Point{X: 120, Y: 40})
	fmt.Printf("world (%g, %g)\n", world.X, world.Y)

	screen := vp.ScreenFromWorld(world)
	fmt.Printf("screen (%g, %g)\n", screen.X, screen.Y)
	// Output:
	// world (50, 20)
	// screen (120, 40)
}

func ExampleViewport_ZoomBy() {
	vp := viewport.New(config.Default())
	fmt.Println(vp.ZoomBy(0.5), vp.Percent())
	fmt.Println(vp.ZoomBy(10))
	fmt.Println(vp.ZoomBy(-10))
	vp.Reset()
	fmt.Println(vp.Zoom(), vp.Pan())
	// Output:
	// 1.5 150
	// 3
	// 0.5
	// 1 {0 0}
}
