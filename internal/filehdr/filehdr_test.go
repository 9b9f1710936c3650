package filehdr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildProducesExactSize(t *testing.T) {
	buf := Build(Header{
		DatasetName: "MYDATA",
		DatasetType: "DATA",
		Created:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Modified:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		PageSize:    65536,
		PageCount:   3,
	})
	require.Len(t, buf, Bytes)
}

func TestBuildWritesMagicAndFlags(t *testing.T) {
	buf := Build(Header{PageSize: 4096, PageCount: 1})
	require.Equal(t, byte(0xc2), buf[12])
	require.Equal(t, align1, buf[32])
	require.Equal(t, align2, buf[35])
	require.Equal(t, endianLE, buf[36])
	require.Equal(t, platformUX, buf[37])
}

func TestBuildWritesFixedLiterals(t *testing.T) {
	buf := Build(Header{PageSize: 4096, PageCount: 1})
	require.Equal(t, "SAS FILE", string(buf[84:92]))
	require.Equal(t, "9.0401M2", string(buf[216:224]))
	require.Equal(t, "Linux   ", string(buf[224:232]))
	require.Equal(t, "x86_64  ", string(buf[240:248]))
}

func TestBuildWritesDatasetNameAndType(t *testing.T) {
	buf := Build(Header{DatasetName: "ABC", DatasetType: "VIEW", PageSize: 4096, PageCount: 1})
	require.Equal(t, byte('A'), buf[92])
	require.Equal(t, byte('B'), buf[93])
	require.Equal(t, byte('C'), buf[94])
	require.Equal(t, byte(' '), buf[95])
	require.Equal(t, "VIEW    ", string(buf[156:164]))
}

func TestBuildWritesPageGeometry(t *testing.T) {
	buf := Build(Header{PageSize: 65536, PageCount: 7})
	require.Equal(t, uint32(Bytes), leUint32(buf[200:204]))
	require.Equal(t, uint32(65536), leUint32(buf[204:208]))
	require.Equal(t, uint64(7), leUint64(buf[208:216]))
}

func TestBuildWritesInitialSequence(t *testing.T) {
	buf := Build(Header{PageSize: 4096, PageCount: 1, InitialSequence: 0xABCD1234})
	require.Equal(t, uint32(0xABCD1234), leUint32(buf[320:324]))
}

func TestBuildDuplicatesCreatedTimestamp(t *testing.T) {
	created := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	buf := Build(Header{Created: created, PageSize: 4096, PageCount: 1})
	require.Equal(t, buf[164:172], buf[328:336])
}

func leUint32(b []byte) uint32 {
	var v uint32
	for i := 3; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
