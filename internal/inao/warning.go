package inao

// LengthWarning reports a code or list block whose widest line exceeds the
// configured column ceiling. It is advisory: the block is still emitted
// unmodified.
type LengthWarning struct {
	Width int    // visual width of the widest line
	Limit int    // configured ceiling for this block kind
	Block string // the offending block text
}
