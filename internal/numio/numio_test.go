package numio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nozzle/untwist/internal/numio"
)

func TestReadValues(t *testing.T) {
	input := "3499211612\n581869302\n\n  0xdeadbeef  \n0\n4294967295\n"
	values, err := numio.ReadValues(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []uint32{3499211612, 581869302, 0xdeadbeef, 0, 4294967295}, values)
}

func TestReadValuesEmpty(t *testing.T) {
	values, err := numio.ReadValues(strings.NewReader("\n\n  \n"))
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestReadValuesMalformed(t *testing.T) {
	for _, input := range []string{"12x\n", "-1\n", "4294967296\n", "1 2\n"} {
		_, err := numio.ReadValues(strings.NewReader(input))
		require.Error(t, err, "input %q", input)
	}
}

func TestReadValuesLineNumberInError(t *testing.T) {
	_, err := numio.ReadValues(strings.NewReader("1\n2\nbogus\n"))
	require.ErrorContains(t, err, "line 3")
}
