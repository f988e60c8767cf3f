package textfile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineKeySchedule(t *testing.T) {
	require.Equal(t, uint16(0x7C89), lineKey(0))
	require.Equal(t, uint16(0xA60C), lineKey(1))
	// the additive step wraps at 16 bits
	require.Equal(t, uint16((0x7C89+100*0x2983)&0xFFFF), lineKey(100))
}

func TestNextKeyRotation(t *testing.T) {
	require.Equal(t, uint16(0xE44B), nextKey(0x7C89))
	require.Equal(t, uint16(0x0008), nextKey(0x0001))
	require.Equal(t, uint16(0x0001), nextKey(0x2000))
}

func TestCryptLineSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		data := make([]byte, 2*(rng.Intn(64)+1))
		rng.Read(data)
		key := uint16(rng.Intn(0x10000))

		buf := append([]byte(nil), data...)
		require.NoError(t, cryptLine(buf, key))
		if len(data) > 0 {
			require.NotEqual(t, data, buf, "cipher must change a nonempty buffer for key 0x%04X", key)
		}
		require.NoError(t, cryptLine(buf, key))
		require.Equal(t, data, buf)
	}
}

func TestCryptLineOddLength(t *testing.T) {
	err := cryptLine([]byte{0x01, 0x02, 0x03}, 0x7C89)
	require.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestCryptLineEmpty(t *testing.T) {
	require.NoError(t, cryptLine(nil, 0x7C89))
}

// Decoding a single line with its index-derived key must agree with decoding
// the whole container.
func TestPerLineIndependence(t *testing.T) {
	cfg, err := NewConfig("LGPE")
	require.NoError(t, err)

	lines := []string{"First", "Second", "[VAR TRNAME] joined", "{漢字|かんじ}"}
	data, err := GetBytes(lines, make([]uint16, len(lines)), cfg, false)
	require.NoError(t, err)

	f, err := New(data, cfg, false)
	require.NoError(t, err)
	all, err := f.Lines()
	require.NoError(t, err)
	require.Equal(t, lines, all)

	for i := range lines {
		run, err := f.EncryptedLine(i)
		require.NoError(t, err)
		require.NoError(t, cryptLine(run, lineKey(i)))
		text, err := parseLine(run, cfg, false)
		require.NoError(t, err)
		require.Equal(t, all[i], text)
	}
}
