package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/go-lattice/common/types"
)

func TestParseLinkAddress(t *testing.T) {
	link, err := ParseLink(testLinkAccount)
	require.NoError(t, err)
	assert.Equal(t, LinkAddress, link.Kind())
	assert.Equal(t, testLinkHash, link.Hex())
	assert.Equal(t, testLinkAccount, link.AsAccount(types.AddressPrefix))
	assert.Equal(t, types.HexToHashPanic(testLinkHash).Bytes(), link.Bytes())
}

func TestParseLinkHash(t *testing.T) {
	lower := "1ef0ad02257987b48030cc8d38511d3b2511672f33af115ad09e18a86a8355a8"
	link, err := ParseLink(lower)
	require.NoError(t, err)
	assert.Equal(t, LinkBlockHash, link.Kind())
	assert.Equal(t, lower, link.Hex())
	assert.Equal(t, testLinkAccount, link.AsAccount(types.AddressPrefix))
	assert.Equal(t,
		"nano_19qion34cye9pk153m6f93ajtgs747mkyexh47ff39iro3oa8ofa43o4zwx4",
		link.AsAccount(types.AddressPrefixNano))
}

func TestParseLinkNanoAddress(t *testing.T) {
	nano := "nano_19qion34cye9pk153m6f93ajtgs747mkyexh47ff39iro3oa8ofa43o4zwx4"
	link, err := ParseLink(nano)
	require.NoError(t, err)
	assert.Equal(t, LinkAddress, link.Kind())
	// an address keeps its own prefix
	assert.Equal(t, nano, link.AsAccount(types.AddressPrefix))
}

func TestParseLinkInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"xrb_",
		"1EF0AD02",
		// checksum broken in the last character
		"xrb_19qion34cye9pk153m6f93ajtgs747mkyexh47ff39iro3oa8ofa43o4zwx5",
		"1EF0AD02257987B48030CC8D38511D3B2511672F33AF115AD09E18A86A8355AG",
	} {
		_, err := ParseLink(s)
		assert.Equal(t, ErrInvalidLink, err, s)
	}
}
