package floor

// SamplePlan returns the demonstration floor: three active tables and one
// excluded table.
func SamplePlan() *Plan {
	return &Plan{
		Name: "Sample",
		Tables: []Table{
			{ID: "table-1", Name: "Mesa 1", X: 200, Y: 150, Shape: ShapeCircular,
				Capacity: Capacity{2, 4}, DiningArea: "interior", Status: StatusActive},
			{ID: "table-2", Name: "Mesa 2", X: 400, Y: 150, Shape: ShapeRectangular,
				Capacity: Capacity{4, 6}, DiningArea: "interior", Status: StatusActive},
			{ID: "table-3", Name: "Mesa 3", X: 600, Y: 200, Shape: ShapeCircular,
				Capacity: Capacity{2, 6}, DiningArea: "exterior", Status: StatusActive},
			{ID: "table-excluded", Name: "Mesa Temporal", X: 100, Y: 100, Shape: ShapeRectangular,
				Capacity: Capacity{2, 4}, DiningArea: "interior", Status: StatusExcluded},
		},
		Elements: []Element{},
	}
}
