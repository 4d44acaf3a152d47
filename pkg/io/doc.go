// Package io reads and writes floor plan documents as JSON or TOML.
//
// # JSON Format
//
//	{
//	  "name": "Main floor",
//	  "tables": [
//	    {"id": "table-1", "name": "Mesa 1", "x": 200, "y": 150,
//	     "shape": "circular", "capacity": {"min": 2, "max": 4},
//	     "diningArea": "interior", "status": "active"}
//	  ],
//	  "elements": [
//	    {"id": "bar-1", "type": "bar", "x": 800, "y": 600, "layer": 1,
//	     "properties": {"width": 200, "hasSeating": true, "seatCount": 6}}
//	  ]
//	}
//
// Element properties must match the element type; unknown element types are
// kept as-is so documents round-trip.
//
// # TOML Format
//
// The same document as TOML uses [[tables]] and [[elements]] arrays. Table keys
// are snake_case; element properties keep their JSON names:
//
//	[[tables]]
//	id = "table-1"
//	name = "Mesa 1"
//	dining_area = "interior"
//	capacity = { min = 2, max = 4 }
//
//	[[elements]]
//	id = "bar-1"
//	type = "bar"
//	properties = { width = 200, seatCount = 6, hasSeating = true }
//
// [ImportFile] and [ExportFile] pick the format from the file extension.
package io
