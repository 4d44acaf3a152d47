// Package floor defines the restaurant floor plan data model.
//
// A [Plan] holds two collections:
//
//   - [Table] records: named, seatable tables with a capacity range, a dining area
//     tag and an active/excluded status. Excluded tables stay in the plan but are
//     hidden from the canvas until restored.
//   - [Element] records: structural and decorative canvas elements (walls, doors,
//     windows, plants, bars, columns, stairs, artwork, carpets, fireplaces).
//
// # Elements as a Tagged Variant
//
// Every Element carries exactly one payload implementing [Props]: [Wall], [Door],
// [Window], [Plant], [Bar], [Column], [Stairs], [Artwork], [Carpet] or
// [Fireplace]. The payload type is the element's type tag, so a property set can
// never disagree with its tag. Zero-valued numeric fields mean "use the type
// default" (for example a door of width 0 renders 80 units wide); booleans whose
// default is true are pointers.
//
// Documents naming an element type this package does not know decode into
// [Unknown]; renderers skip such elements and [ValidateElement] reports them.
//
// # Table Configuration
//
// [TableConfig] mirrors the "add table" form and [ValidateTable] mirrors the
// configuration form: both report per-field messages instead of failing.
//
//	fe := floor.ValidateTable(t)
//	if !fe.Empty() {
//	    // show fe["name"], fe["minCapacity"], ...
//	}
package floor
