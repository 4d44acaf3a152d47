package floor_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/floorplan/pkg/floor"
)

func ExamplePlan_AddTable() {
	plan := floor.SamplePlan()
	before := plan.TotalCapacity()

	t := plan.AddTable(floor.DefaultTableConfig(floor.ShapeCircular, "Mesa 9"), 600, 400)
	fmt.Println(strings.HasPrefix(t.ID, "table-"), t.Shape, t.Status, t.Capacity)
	fmt.Println(plan.TotalCapacity() - before)
	// Output:
	// true circular active 2-4
	// 4
}

func ExampleTableConfig_Validate() {
	for _, cfg := range []floor.TableConfig{
		{Shape: floor.ShapeCircular, Name: "Mesa 1", MinCapacity: 2, MaxCapacity: 4},
		{Shape: floor.ShapeCircular, Name: "Mesa 1", MinCapacity: 5, MaxCapacity: 2},
	} {
		fe := cfg.Validate()
		fmt.Println(fe.Empty(), fe.Has("capacity"))
	}
	// Output:
	// true false
	// false true
}
