package history

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"hexathello/game"
)

func TestVectorAsIntMostSignificantBitFirst(t *testing.T) {
	x, err := VectorAsInt([]float64{1, 0, 1, 1})
	require.NoError(t, err)
	require.Equal(t, int64(11), x.Int64(), "index 0 is the highest bit")

	x, err = VectorAsInt([]float64{0, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, int64(1), x.Int64())

	x, err = VectorAsInt(nil)
	require.NoError(t, err)
	require.Zero(t, x.Sign(), "empty vector packs to zero")
}

func TestVectorAsIntRejectsNonBinaryEntries(t *testing.T) {
	_, err := VectorAsInt([]float64{1, 0.5, 0})
	require.ErrorIs(t, err, game.ErrMalformedVector)
	_, err = VectorAsInt([]float64{-1})
	require.ErrorIs(t, err, game.ErrMalformedVector)
}

func TestVectorIntRoundTrip(t *testing.T) {
	for length := 1; length <= 256; length++ {
		patterned := make([]float64, length)
		allOnes := make([]float64, length)
		for i := range patterned {
			if i%3 == 0 {
				patterned[i] = 1
			}
			allOnes[i] = 1
		}
		for _, v := range [][]float64{make([]float64, length), allOnes, patterned} {
			x, err := VectorAsInt(v)
			require.NoError(t, err)
			got, err := IntAsVector(x, length)
			require.NoError(t, err)
			require.Equal(t, v, got, "length %d", length)
		}
	}
}

func TestIntAsVectorPadsLeadingZeros(t *testing.T) {
	got, err := IntAsVector(big.NewInt(5), 6)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 1, 0, 1}, got)
}

func TestIntAsVectorOverflow(t *testing.T) {
	_, err := IntAsVector(big.NewInt(8), 3)
	require.ErrorIs(t, err, game.ErrOverflow, "8 needs four bits")

	_, err = IntAsVector(big.NewInt(7), 3)
	require.NoError(t, err, "7 fits exactly")

	_, err = IntAsVector(big.NewInt(-1), 3)
	require.ErrorIs(t, err, game.ErrOverflow)

	// Beyond machine word widths: 2^200 into 200 bits.
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	_, err = IntAsVector(huge, 200)
	require.ErrorIs(t, err, game.ErrOverflow)
	_, err = IntAsVector(huge, 201)
	require.NoError(t, err)
}
