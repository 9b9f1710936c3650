package subheader

import "github.com/hailam/sas7bdat/internal/rowlayout"

// ColumnAttributeEntry is one variable's physical placement, kind, and
// name (the name is needed only to classify the name-flag field below;
// it is never itself written here — ColumnName owns the name reference).
type ColumnAttributeEntry struct {
	PhysicalOffset int
	Length         int
	Kind           rowlayout.VarKind
	Name           string
}

// ColumnAttributes is a variable-size subheader listing, for a contiguous
// run of variables in schema order, their physical row offset, length,
// kind, and a name-shape flag. Like ColumnName, a schema too large for one
// subheader's page-space budget is split across several; internal/
// pagelayout decides the split points.
type ColumnAttributes struct {
	Entries []ColumnAttributeEntry
}

const columnAttributeEntryBytes = 16

func (c *ColumnAttributes) Signature() uint64 { return SigColumnAttributes }
func (c *ColumnAttributes) Size() int {
	return variableFrameSize(len(c.Entries) * columnAttributeEntryBytes)
}
func (c *ColumnAttributes) TypeCode() uint8        { return 0 }
func (c *ColumnAttributes) CompressionCode() uint8 { return 0 }

// Per-entry layout (16B): physical offset (8B), column length (4B),
// name-flag (2B), type code (1B, 1 numeric/2 character), unused (1B).
func (c *ColumnAttributes) Emit(buf []byte, off int, _ LayoutView) {
	payload := make([]byte, len(c.Entries)*columnAttributeEntryBytes)
	for i, e := range c.Entries {
		base := i * columnAttributeEntryBytes
		putI64(payload, base, e.PhysicalOffset)
		putI32(payload, base+8, e.Length)
		putU16(payload, base+12, nameFlag(e.Name))
		typeCode := byte(1)
		if e.Kind == rowlayout.Character {
			typeCode = 2
		}
		payload[base+14] = typeCode
	}
	writeVariableFrame(buf, off, c.Signature(), payload)
}

// nameFlag classifies a variable name's shape: 0x0400 for a simple
// identifier of 8 bytes or fewer, 0x0800 for a simple identifier longer
// than that, 0x0C00 for anything else (spaces, punctuation, a leading
// digit).
func nameFlag(name string) uint16 {
	if !isSimpleIdentifier(name) {
		return 0x0C00
	}
	if len(name) <= 8 {
		return 0x0400
	}
	return 0x0800
}

func isSimpleIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
