package runeio_test

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goforth/internal/runeio"
)

func TestNewReader(t *testing.T) {
	sr := strings.NewReader("x")
	assert.Equal(t, runeio.Reader(sr), runeio.NewReader(sr), "expected a rune reader to pass through")

	rr := runeio.NewReader(runeio.NamedReader("hello.fs", iotest.OneByteReader(strings.NewReader("€1"))))
	named, ok := rr.(interface{ Name() string })
	require.True(t, ok, "expected name to be preserved")
	assert.Equal(t, "hello.fs", named.Name())

	var runes []rune
	for {
		r, _, err := rr.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		runes = append(runes, r)
	}
	assert.Equal(t, []rune{'€', '1'}, runes)
}
