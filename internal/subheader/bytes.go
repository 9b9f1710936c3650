package subheader

import "github.com/hailam/sas7bdat/internal/bwriter"

func putU16(buf []byte, off int, v uint16) { bwriter.PutUint16LE(buf, off, v) }
func putU32(buf []byte, off int, v uint32) { bwriter.PutUint32LE(buf, off, v) }
func putU64(buf []byte, off int, v uint64) { bwriter.PutUint64LE(buf, off, v) }

func putI32(buf []byte, off int, v int) { putU32(buf, off, uint32(int32(v))) }
func putI64(buf []byte, off int, v int) { putU64(buf, off, uint64(int64(v))) }

func align4(n int) int { return bwriter.Align(n, 4) }
