package huffcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("all frequencies equal", func(t *testing.T) {
		table := Build(Frequencies{1, 1, 1, 1, 1})
		requireTable(t, table, Table{
			{Len: 3, Bits: 0b110},
			{Len: 3, Bits: 0b111},
			{Len: 2, Bits: 0b00},
			{Len: 2, Bits: 0b01},
			{Len: 2, Bits: 0b10},
		})
		require.Equal(t, uint32(0x67012), table.Pack())
	})

	t.Run("single dominant symbol", func(t *testing.T) {
		table := Build(Frequencies{31, 1, 1, 1, 1})
		requireTable(t, table, Table{
			{Len: 1, Bits: 0b1},
			{Len: 3, Bits: 0b000},
			{Len: 3, Bits: 0b001},
			{Len: 3, Bits: 0b010},
			{Len: 3, Bits: 0b011},
		})
		require.Equal(t, uint32(0x10123), table.Pack())

		// a's padded field and c's padded field collide, which is exactly
		// why Len travels with Bits
		require.Equal(t, table[0].Bits, table[2].Bits)
		require.NotEqual(t, table[0].Len, table[2].Len)
	})

	t.Run("all-zero vector", func(t *testing.T) {
		table := Build(Frequencies{})
		// every merge ties at weight 0, so tie key 0 keeps winning and
		// the lowest ids cascade to the bottom of the tree
		requireTable(t, table, Table{
			{Len: 4, Bits: 0b0000},
			{Len: 4, Bits: 0b0001},
			{Len: 3, Bits: 0b001},
			{Len: 2, Bits: 0b01},
			{Len: 1, Bits: 0b1},
		})
		require.Equal(t, uint32(0x01111), table.Pack())
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		f := Frequencies{7, 3, 3, 7, 0}
		require.Equal(t, Build(f), Build(f))
	})
}

func TestUnpackFrequencies(t *testing.T) {
	t.Run("all-equal legacy word", func(t *testing.T) {
		require.Equal(t, Frequencies{1, 1, 1, 1, 1}, UnpackFrequencies(0x108421))
	})

	t.Run("dominant symbol legacy word", func(t *testing.T) {
		require.Equal(t, Frequencies{31, 1, 1, 1, 1}, UnpackFrequencies(0x1F08421))
	})

	t.Run("bits above the frequency fields are ignored", func(t *testing.T) {
		require.Equal(t, UnpackFrequencies(0x108421), UnpackFrequencies(0xE108421))
	})
}

func requireTable(t *testing.T, got, wanted Table) {
	t.Helper()

	for id := range wanted {
		require.Equal(t, wanted[id], got[id], "symbol %d", id)
	}
}
