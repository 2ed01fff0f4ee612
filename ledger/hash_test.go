package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/go-lattice/common/types"
)

const (
	testSecretKey = "781186FB9EF17DB6E3D1056550D9FAE5D5BBADA6A6BC370E4CBB938B1DC71DA3"
	testPublicKey = "3068BB1CA04525BB0E416C485FE6A67FD52540227D267CC8B6E8DA958A7FA039"
	testAccount   = "xrb_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5rx"

	// address of the all-zero secret key
	testRepresentative = "xrb_18gmu6engqhgtjnppqam181o5nfhj4sdtgyhy36dan3jr9spt84rzwmktafc"

	testPrevious    = "991CF190094C00F0B68E2E5F75F6BEE95A2E0BD93CEAA4A6734DB9F19B728948"
	testDividend    = "A170D51B94E00371ACE76E35AC81DC9405D5D04D4CEBC399AEACE07AE05DD293"
	testLinkHash    = "1EF0AD02257987B48030CC8D38511D3B2511672F33AF115AD09E18A86A8355A8"
	testLinkAccount = "xrb_19qion34cye9pk153m6f93ajtgs747mkyexh47ff39iro3oa8ofa43o4zwx4"
	testBalance     = "3000000000000000000000000000000"

	zeroHash = "0000000000000000000000000000000000000000000000000000000000000000"
)

func fullParams(t BlockType) *HashParams {
	return &HashParams{
		Type:           t,
		Account:        testAccount,
		Previous:       testPrevious,
		Representative: testRepresentative,
		Balance:        testBalance,
		Link:           testLinkHash,
		Dividend:       testDividend,
	}
}

func TestHashBlockGolden(t *testing.T) {
	cases := []struct {
		blockType BlockType
		want      string
	}{
		{BlockTypeState, "13716FE9375DE8EAE0D41258BA618EB583BDCB9C9D1486FBA38AB71DCB3E645A"},
		{BlockTypeDividend, "0F1572F3B610A24AD9A429FDD6741CBB72F2CFEC63DF56471B850D90D7F2E1B3"},
		{BlockTypeClaim, "7BAE775B14B7F3F8656AE58D3B564341FE0B06BC48C1851FF6DCAF9DFEEA9C60"},
	}
	for _, c := range cases {
		t.Run(c.blockType.String(), func(t *testing.T) {
			hash, err := HashBlock(fullParams(c.blockType))
			require.NoError(t, err)
			assert.Equal(t, c.want, hash.Hex())
		})
	}
}

func TestHashBlockMaxBalance(t *testing.T) {
	params := fullParams(BlockTypeState)
	params.Balance = types.MaxAmount.String()
	hash, err := HashBlock(params)
	require.NoError(t, err)
	assert.Equal(t, "BB5B4E87E5E5A060BD8E8A5F64F70109C98CD7D50E91E7B70C1A78E0AB3A6F28", hash.Hex())
}

func TestHashBlockPreambleSeparation(t *testing.T) {
	seen := map[types.Hash]BlockType{}
	for _, bt := range []BlockType{BlockTypeState, BlockTypeDividend, BlockTypeClaim} {
		hash, err := HashBlock(fullParams(bt))
		require.NoError(t, err)
		_, dup := seen[hash]
		assert.False(t, dup, bt.String())
		seen[hash] = bt
	}
}

func TestHashBlockDividendIgnoresLink(t *testing.T) {
	for _, bt := range []BlockType{BlockTypeDividend, BlockTypeClaim} {
		withLink, err := HashBlock(fullParams(bt))
		require.NoError(t, err)

		params := fullParams(bt)
		params.Link = "not a link"
		withoutLink, err := HashBlock(params)
		require.NoError(t, err)
		assert.Equal(t, withLink, withoutLink)
	}
}

func TestHashBlockLinkForms(t *testing.T) {
	byHash, err := HashBlock(fullParams(BlockTypeState))
	require.NoError(t, err)

	params := fullParams(BlockTypeState)
	params.Link = testLinkAccount
	byAddress, err := HashBlock(params)
	require.NoError(t, err)
	assert.Equal(t, byHash, byAddress)
}

func TestHashBlockCaseInsensitiveHex(t *testing.T) {
	upper, err := HashBlock(fullParams(BlockTypeClaim))
	require.NoError(t, err)

	params := fullParams(BlockTypeClaim)
	params.Previous = "991cf190094c00f0b68e2e5f75f6bee95a2e0bd93ceaa4a6734db9f19b728948"
	params.Dividend = "a170d51b94e00371ace76e35ac81dc9405d5d04d4cebc399aeace07ae05dd293"
	lower, err := HashBlock(params)
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestHashBlockValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HashParams)
		want   error
	}{
		{"type", func(p *HashParams) { p.Type = 0 }, ErrInvalidType},
		{"unknown type", func(p *HashParams) { p.Type = 9 }, ErrInvalidType},
		{"account", func(p *HashParams) { p.Account = testPublicKey }, ErrInvalidAccount},
		{"previous", func(p *HashParams) { p.Previous = "00" }, ErrInvalidPrevious},
		{"representative", func(p *HashParams) { p.Representative = "xrb_1" }, ErrInvalidRepresentative},
		{"balance", func(p *HashParams) { p.Balance = "-5" }, ErrInvalidBalance},
		{"balance overflow", func(p *HashParams) { p.Balance = "340282366920938463463374607431768211456" }, ErrInvalidBalance},
		{"empty link", func(p *HashParams) { p.Link = "" }, ErrInvalidLink},
		{"bad link", func(p *HashParams) { p.Link = "xrb_" }, ErrInvalidLink},
		{"dividend", func(p *HashParams) { p.Dividend = testAccount }, ErrInvalidDividend},
		{"first of many", func(p *HashParams) {
			p.Previous = ""
			p.Balance = ""
			p.Dividend = ""
		}, ErrInvalidPrevious},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			params := fullParams(BlockTypeState)
			c.mutate(params)
			_, err := HashBlock(params)
			assert.Equal(t, c.want, err)
		})
	}
}

func TestPreamble(t *testing.T) {
	for bt, want := range map[BlockType]byte{BlockTypeState: 6, BlockTypeDividend: 7, BlockTypeClaim: 8} {
		p := bt.Preamble()
		assert.Equal(t, want, p[31])
		assert.Equal(t, make([]byte, 31), p[:31])
	}
}

func BenchmarkHashBlock(b *testing.B) {
	params := fullParams(BlockTypeState)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := HashBlock(params); err != nil {
			b.Fatal(err)
		}
	}
}
