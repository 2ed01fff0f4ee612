package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	knownSecretKey = "781186FB9EF17DB6E3D1056550D9FAE5D5BBADA6A6BC370E4CBB938B1DC71DA3"
	knownPublicKey = "3068BB1CA04525BB0E416C485FE6A67FD52540227D267CC8B6E8DA958A7FA039"
	knownAddress   = "xrb_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5rx"
)

func TestAddressValid(t *testing.T) {
	assert.True(t, IsValidAddress(knownAddress))
	assert.True(t, IsValidAddress("nano_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5rx"))
	assert.True(t, IsValidAddress("xrb_18gmu6engqhgtjnppqam181o5nfhj4sdtgyhy36dan3jr9spt84rzwmktafc"))

	fakes := []string{
		"",
		"1231231",
		// wrong prefix
		"vite_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5rx",
		// bad checksum
		"xrb_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5ry",
		// one character short
		"xrb_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5r",
		// 'l' is not in the alphabet
		"xrb_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjyml5x",
		// upper case
		"xrb_1E5AQEGC1JB7QE964U4ADZMCEZYO6O146ZB8HM6DFT8TKP79ZA3SXWJYM5RX",
		// leading character out of key range
		"xrb_5e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5rx",
	}
	for _, fake := range fakes {
		assert.False(t, IsValidAddress(fake), fake)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	addr, err := ParseAddress(knownAddress)
	require.NoError(t, err)
	assert.Equal(t, knownPublicKey, addr.PublicKeyHex())
	assert.Equal(t, knownAddress, addr.String())

	fromKey, err := HexToAddress(knownPublicKey)
	require.NoError(t, err)
	assert.Equal(t, addr, fromKey)
	assert.Equal(t, "nano_1e5aqegc1jb7qe964u4adzmcezyo6o146zb8hm6dft8tkp79za3sxwjym5rx", fromKey.Format(AddressPrefixNano))

	nano, err := ParseAddress(fromKey.Format(AddressPrefixNano))
	require.NoError(t, err)
	assert.Equal(t, addr, nano)
}

func TestHexToAddressLowerCase(t *testing.T) {
	addr, err := HexToAddress("3068bb1ca04525bb0e416c485fe6a67fd52540227d267cc8b6e8da958a7fa039")
	require.NoError(t, err)
	assert.Equal(t, knownAddress, addr.String())
}

func TestZeroAndMaxKeys(t *testing.T) {
	var zero Address
	parsed, err := ParseAddress(zero.String())
	require.NoError(t, err)
	assert.Equal(t, zero, parsed)
	assert.Equal(t, byte('1'), zero.String()[len(AddressPrefix)])

	var max Address
	for i := range max {
		max[i] = 0xff
	}
	parsed, err = ParseAddress(max.String())
	require.NoError(t, err)
	assert.Equal(t, max, parsed)
	assert.Equal(t, byte('3'), max.String()[len(AddressPrefix)])
}

func TestAddress_UnmarshalJSON(t *testing.T) {
	addr0, err := ParseAddress(knownAddress)
	require.NoError(t, err)
	marshal, err := json.Marshal(addr0)
	require.NoError(t, err)
	assert.Equal(t, `"`+knownAddress+`"`, string(marshal))

	var addr Address
	require.NoError(t, json.Unmarshal(marshal, &addr))
	assert.Equal(t, addr0, addr)

	assert.Error(t, json.Unmarshal([]byte(`"xrb_1111"`), &addr))
}

func TestBytesToAddress(t *testing.T) {
	_, err := BytesToAddress(make([]byte, 31))
	assert.Error(t, err)

	addr, err := PubkeyToAddress(make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, Address{}, addr)
}
