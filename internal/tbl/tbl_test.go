package tbl

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTable assembles a sidecar from (hash, raw cp1252 name) pairs.
func buildTable(entries []struct {
	hash uint64
	name []byte
}) []byte {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data, 0x42544841)
	binary.LittleEndian.PutUint32(data[4:], uint32(len(entries)))
	for _, e := range entries {
		var head [10]byte
		binary.LittleEndian.PutUint64(head[:], e.hash)
		binary.LittleEndian.PutUint16(head[8:], uint16(len(e.name)))
		data = append(data, head[:]...)
		data = append(data, e.name...)
	}
	return data
}

func TestDecode(t *testing.T) {
	data := buildTable([]struct {
		hash uint64
		name []byte
	}{
		{0x1122334455667788, []byte("msg_greeting")},
		// NUL padding inside the declared length is trimmed
		{0xCAFEBABE, []byte("msg_farewell\x00\x00\x00")},
		// 0x80 is the euro sign in cp1252
		{0x1, []byte{'p', 'r', 'i', 'c', 'e', 0x80}},
	})

	labels, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, labels, 3)
	require.Equal(t, Label{ID: "msg_greeting", Hash: 0x1122334455667788}, labels[0])
	require.Equal(t, Label{ID: "msg_farewell", Hash: 0xCAFEBABE}, labels[1])
	require.Equal(t, Label{ID: "price€", Hash: 0x1}, labels[2])
}

func TestDecodeEmptyTable(t *testing.T) {
	labels, err := Decode(buildTable(nil))
	require.NoError(t, err)
	require.Empty(t, labels)
}

func TestDecodeErrors(t *testing.T) {
	valid := buildTable([]struct {
		hash uint64
		name []byte
	}{{0x1, []byte("one")}})

	badMagic := append([]byte(nil), valid...)
	badMagic[0] = 'X'

	hugeCount := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(hugeCount[4:], 0xFFFFFFFF)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortTable},
		{"short header", valid[:6], ErrShortTable},
		{"bad magic", badMagic, ErrBadMagic},
		{"count overruns file", hugeCount, ErrShortTable},
		{"truncated name", valid[:len(valid)-1], ErrShortTable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "common.tbl")
	data := buildTable([]struct {
		hash uint64
		name []byte
	}{{0x42, []byte("msg_title")}})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	labels, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []Label{{ID: "msg_title", Hash: 0x42}}, labels)

	_, err = ReadFile(filepath.Join(dir, "missing.tbl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPathFor(t *testing.T) {
	require.Equal(t, filepath.Join("a", "b", "common.tbl"), PathFor(filepath.Join("a", "b", "common.dat")))
	require.Equal(t, "noext.tbl", PathFor("noext"))
}
