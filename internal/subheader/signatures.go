package subheader

// The eight subheader signatures this package emits, plus the three
// reserved-but-unused signatures SubheaderCounts still tracks slots for
// (spec.md §4.E enumerates all eleven; only eight are ever constructed by
// this implementation).
const (
	SigRowSize          uint64 = 0xF7F7F7F7
	SigColumnSize       uint64 = 0xF6F6F6F6
	SigSubheaderCounts  uint64 = 0xFFFFFFFFFFFFFC00
	SigColumnFormat     uint64 = 0xFFFFFFFFFFFFFBFE
	SigColumnAttributes uint64 = 0xFFFFFFFFFFFFFFFC
	SigColumnText       uint64 = 0xFFFFFFFFFFFFFFFD
	SigColumnList       uint64 = 0xFFFFFFFFFFFFFFFE
	SigColumnName       uint64 = 0xFFFFFFFFFFFFFFFF

	sigUnknown1 uint64 = 0xFFFFFFFFFFFFFFFB
	sigUnknown2 uint64 = 0xFFFFFFFFFFFFFFFA
	sigUnknown3 uint64 = 0xFFFFFFFFFFFFFFF9
)

// trackedSignatures is the seven-entry order SubheaderCounts records one
// first/last-appearance slot for.
var trackedSignatures = [7]uint64{
	SigColumnAttributes,
	SigColumnText,
	SigColumnName,
	SigColumnList,
	sigUnknown1,
	sigUnknown2,
	sigUnknown3,
}
