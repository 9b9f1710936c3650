package sas7bdat

// Format is a SAS informat/format reference: a name, a display width, and a
// number of decimal digits. An empty name with width and digits both zero
// means "unspecified" — the variable uses SAS's default display for its type.
type Format struct {
	name    string
	width   int
	decimal int
}

// UnspecifiedFormat is the zero-value Format: empty name, width 0, decimal 0.
var UnspecifiedFormat = Format{}

// NewFormat builds a Format, enforcing spec.md §3's invariants: name is at
// most 8 ASCII bytes (may be empty), width and decimal are each in
// [0, 32767].
func NewFormat(name string, width, decimal int) (Format, error) {
	if len(name) > 8 {
		return Format{}, newErr(KindBadArgument, "format name %q exceeds 8 bytes", name)
	}
	if !isASCII(name) {
		return Format{}, newErr(KindBadArgument, "format name %q is not ASCII", name)
	}
	if width < 0 || width > 32767 {
		return Format{}, newErr(KindBadArgument, "format width %d out of range [0,32767]", width)
	}
	if decimal < 0 || decimal > 32767 {
		return Format{}, newErr(KindBadArgument, "format decimal %d out of range [0,32767]", decimal)
	}
	return Format{name: name, width: width, decimal: decimal}, nil
}

// Name returns the format's name (ASCII, <=8 bytes, may be empty).
func (f Format) Name() string { return f.name }

// Width returns the format's display width.
func (f Format) Width() int { return f.width }

// Decimal returns the format's decimal digit count.
func (f Format) Decimal() int { return f.decimal }

// IsUnspecified reports whether f is the zero value: empty name, zero width,
// zero decimal digits.
func (f Format) IsUnspecified() bool {
	return f.name == "" && f.width == 0 && f.decimal == 0
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
