package wallet

import (
	"math"

	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/crypto/ed25519"
	"github.com/latticelabs/go-lattice/wallet/walleterrors"
)

// Account is one derived key of a seed.
type Account struct {
	Index     uint32
	secretKey types.SecretKey
	address   types.Address
}

func NewAccount(seed Seed, index uint32) *Account {
	key := DeriveSecretKey(seed, index)
	return &Account{
		Index:     index,
		secretKey: key,
		address:   key.Address(),
	}
}

// MaxIndex is the last account index of a seed.
const MaxIndex = math.MaxUint32

// Accounts derives count accounts starting at index from. The range must
// end at or before MaxIndex.
func Accounts(seed Seed, from, count uint32) ([]*Account, error) {
	if uint64(from)+uint64(count) > uint64(MaxIndex)+1 {
		return nil, walleterrors.ErrIndexRange
	}
	accounts := make([]*Account, 0, count)
	for i := uint32(0); i < count; i++ {
		accounts = append(accounts, NewAccount(seed, from+i))
	}
	return accounts, nil
}

func (acct Account) Address() types.Address {
	return acct.address
}

func (acct Account) SecretKey() types.SecretKey {
	return acct.secretKey
}

func (acct Account) Sign(msg []byte) (signData []byte, pub ed25519.PublicKey) {
	return ed25519.Sign(acct.secretKey.PrivateKey(), msg), acct.address.PublicKey()
}
