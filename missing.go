package sas7bdat

import "github.com/hailam/sas7bdat/internal/sasvalue"

// MissingValue is one of the 28 SAS numeric missing-value sentinels: the
// standard missing value ".", the underscore missing value "._", and the
// 26 lettered missing values ".A" through ".Z".
type MissingValue = sasvalue.MissingValue

// The 28 SAS numeric missing-value sentinels.
const (
	MissingStandard   = sasvalue.MissingStandard
	MissingUnderscore = sasvalue.MissingUnderscore
	MissingA          = sasvalue.MissingA
	MissingB          = sasvalue.MissingB
	MissingC          = sasvalue.MissingC
	MissingD          = sasvalue.MissingD
	MissingE          = sasvalue.MissingE
	MissingF          = sasvalue.MissingF
	MissingG          = sasvalue.MissingG
	MissingH          = sasvalue.MissingH
	MissingI          = sasvalue.MissingI
	MissingJ          = sasvalue.MissingJ
	MissingK          = sasvalue.MissingK
	MissingL          = sasvalue.MissingL
	MissingM          = sasvalue.MissingM
	MissingN          = sasvalue.MissingN
	MissingO          = sasvalue.MissingO
	MissingP          = sasvalue.MissingP
	MissingQ          = sasvalue.MissingQ
	MissingR          = sasvalue.MissingR
	MissingS          = sasvalue.MissingS
	MissingT          = sasvalue.MissingT
	MissingU          = sasvalue.MissingU
	MissingV          = sasvalue.MissingV
	MissingW          = sasvalue.MissingW
	MissingX          = sasvalue.MissingX
	MissingY          = sasvalue.MissingY
	MissingZ          = sasvalue.MissingZ
)

// IsMissingValue reports whether bits matches one of the 28 sentinel
// patterns, returning the matching MissingValue and true if so.
func IsMissingValue(bits uint64) (MissingValue, bool) {
	return sasvalue.IsMissingValue(bits)
}
