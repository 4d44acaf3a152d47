package interaction_test

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/interaction"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

func ExampleSnap() {
	fmt.Println(interaction.Snap(37, 20), interaction.Snap(-13, 20), interaction.Snap(30, 20))
	// Output: 40 -20 40
}

func ExampleController() {
	cfg := config.Default()
	tables := floor.SamplePlan().ActiveTables()
	c := interaction.New(viewport.New(cfg), cfg)

	ev := c.PointerDown(floor.Point{X: 205, Y: 150}, tables)
	fmt.Println(ev.Kind, ev.Table.Name, c.State())

	ev, _ = c.PointerMove(floor.Point{X: 242, Y: 137})
	fmt.Println(ev.Kind, ev.TableID, ev.X, ev.Y)

	c.PointerUp()
	_, ok := c.PointerMove(floor.Point{X: 300, Y: 300})
	fmt.Println(c.State(), ok)
	// Output:
	// select Mesa 1 dragging
	// move table-1 240 140
	// idle false
}
