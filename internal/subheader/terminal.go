package subheader

// Terminal is the zero-length end-of-index marker. Its page index entry
// carries compression code 1, a length of zero, and the page's data offset
// at the point it was added; it writes no bytes of its own.
type Terminal struct{}

func (t *Terminal) Signature() uint64      { return 0 }
func (t *Terminal) Size() int              { return 0 }
func (t *Terminal) TypeCode() uint8        { return 0 }
func (t *Terminal) CompressionCode() uint8 { return 1 }
func (t *Terminal) Emit([]byte, int, LayoutView) {}
