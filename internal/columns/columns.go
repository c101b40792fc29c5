// Package columns defines the fixed product table column set and the
// ColumnOrder permutation that decides their left-to-right layout.
package columns

// ID identifies one table column.
type ID string

const (
	ProductID   ID = "id"
	Name        ID = "name"
	Price       ID = "price"
	Quality     ID = "quality"
	Description ID = "description"
	ImageURL    ID = "imageUrl"
)

// All is the complete column set in default display order.
var All = []ID{ProductID, Name, Price, Quality, Description, ImageURL}

// IsAnchor reports whether the column is pinned in place. Anchor columns can
// neither be dragged nor act as a drop destination.
func IsAnchor(id ID) bool {
	return id == Name
}

// Known reports whether id belongs to the fixed column set.
func Known(id ID) bool {
	for _, c := range All {
		if c == id {
			return true
		}
	}
	return false
}

func (id ID) String() string {
	return string(id)
}
