package subheader

// ColumnText is a variable-size subheader holding one chunk of the shared
// string pool: dataset/variable names, labels, and format names are all
// interned here and referenced elsewhere by a (subheader index, offset,
// length) triple. internal/textpool owns the policy of when to open a new
// ColumnText and how large to make it; this type only knows how to accept
// appends into a fixed-capacity buffer and emit itself.
type ColumnText struct {
	payload []byte
	used    int
}

// NewColumnText allocates a ColumnText whose payload capacity is fixed at
// maxSize for its lifetime.
func NewColumnText(maxSize int) *ColumnText {
	return &ColumnText{payload: make([]byte, maxSize)}
}

// Append writes s into the next 4-byte-aligned free slot, reporting the
// byte offset (within the payload, before the frame header) and length it
// was written at. ok is false if s does not fit in the remaining capacity;
// the subheader is left unmodified in that case.
func (c *ColumnText) Append(s string) (offset, length int, ok bool) {
	raw := []byte(s)
	need := align4(len(raw))
	if need == 0 {
		need = 4
	}
	if c.used+need > len(c.payload) {
		return 0, 0, false
	}
	offset = c.used
	copy(c.payload[offset:], raw)
	c.used += need
	return offset, len(raw), true
}

// OffsetFromSignature converts a payload-relative offset (as returned by
// Append) into the "offset from signature" convention the 6-byte reference
// triple uses: 16 bytes for the shared signature+payload-size frame header,
// plus the payload offset.
func (c *ColumnText) OffsetFromSignature(payloadOffset int) int {
	return 16 + payloadOffset
}

// Remaining reports how many free bytes are left to Append into.
func (c *ColumnText) Remaining() int { return len(c.payload) - c.used }

// PadAndFinalize fills any unused tail with zero, writing the two-field
// padding marker (count=1, then the padding length) at its start when the
// tail is at least 8 bytes, mirroring SAS's own padding-block convention.
// Called once, when the subheader is committed to the page layout.
func (c *ColumnText) PadAndFinalize() {
	padding := len(c.payload) - c.used
	if padding >= 8 {
		putU32(c.payload, c.used, 1)
		putU32(c.payload, c.used+4, uint32(padding))
	}
	c.used = len(c.payload)
}

func (c *ColumnText) Signature() uint64      { return SigColumnText }
func (c *ColumnText) Size() int              { return variableFrameSize(len(c.payload)) }
func (c *ColumnText) TypeCode() uint8        { return 0 }
func (c *ColumnText) CompressionCode() uint8 { return 0 }

func (c *ColumnText) Emit(buf []byte, off int, _ LayoutView) {
	writeVariableFrame(buf, off, c.Signature(), c.payload)
}
