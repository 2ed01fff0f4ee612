package entropystore

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"

	"github.com/latticelabs/go-lattice/common/types"
	vcrypto "github.com/latticelabs/go-lattice/crypto"
	"github.com/latticelabs/go-lattice/wallet"
	"github.com/latticelabs/go-lattice/wallet/walleterrors"
)

const (
	// StandardScryptN is the N parameter of Scrypt encryption algorithm, using 256MB
	// memory and taking approximately 1s CPU time on a modern processor.
	StandardScryptN = 1 << 18

	// StandardScryptP is the P parameter of Scrypt encryption algorithm, using 256MB
	// memory and taking approximately 1s CPU time on a modern processor.
	StandardScryptP = 1

	// LightScryptN is the N parameter of Scrypt encryption algorithm, using 4MB
	// memory and taking approximately 100ms CPU time on a modern processor.
	LightScryptN = 1 << 12

	// LightScryptP is the P parameter of Scrypt encryption algorithm, using 4MB
	// memory and taking approximately 100ms CPU time on a modern processor.
	LightScryptP = 6

	scryptR      = 8
	scryptKeyLen = 32

	aesMode    = "aes-256-gcm"
	scryptName = "scrypt"

	storeVersion = 1
)

type scryptParams struct {
	N      int    `json:"n"`
	R      int    `json:"r"`
	P      int    `json:"p"`
	KeyLen int    `json:"keylen"`
	Salt   string `json:"salt"`
}

type cryptoJSON struct {
	CipherName   string       `json:"ciphername"`
	CipherText   string       `json:"ciphertext"`
	Nonce        string       `json:"nonce"`
	KDF          string       `json:"kdf"`
	ScryptParams scryptParams `json:"scryptparams"`
}

type entropyJSON struct {
	// address of account 0, identifies the seed without decrypting it
	PrimaryAddress string     `json:"primaryAddress"`
	Crypto         cryptoJSON `json:"crypto"`
	Version        int        `json:"seedstoreversion"`
	Timestamp      int64      `json:"timestamp"`
}

// CryptoStore keeps one seed in a passphrase encrypted file.
type CryptoStore struct {
	EntropyStoreFilename string
	UseLightScrypt       bool
}

func NewCryptoStore(entropyStoreFilename string, useLightScrypt bool) *CryptoStore {
	return &CryptoStore{
		EntropyStoreFilename: entropyStoreFilename,
		UseLightScrypt:       useLightScrypt,
	}
}

func (ks CryptoStore) ExtractSeed(passphrase string) (wallet.Seed, error) {
	keyjson, err := os.ReadFile(ks.EntropyStoreFilename)
	if err != nil {
		return wallet.Seed{}, errors.Wrap(err, "read seed store")
	}
	return DecryptSeed(keyjson, passphrase)
}

func (ks CryptoStore) StoreSeed(seed wallet.Seed, passphrase string) error {
	keyjson, err := EncryptSeed(seed, passphrase, ks.UseLightScrypt)
	if err != nil {
		return err
	}
	return errors.Wrap(writeKeyFile(ks.EntropyStoreFilename, keyjson), "write seed store")
}

// PrimaryAddress reads the address recorded in the store file.
func (ks CryptoStore) PrimaryAddress() (types.Address, error) {
	keyjson, err := os.ReadFile(ks.EntropyStoreFilename)
	if err != nil {
		return types.Address{}, errors.Wrap(err, "read seed store")
	}
	k, err := parseJson(keyjson)
	if err != nil {
		return types.Address{}, err
	}
	return types.ParseAddress(k.PrimaryAddress)
}

func DecryptSeed(entropyJson []byte, passphrase string) (wallet.Seed, error) {
	k, err := parseJson(entropyJson)
	if err != nil {
		return wallet.Seed{}, err
	}
	cipherData, err := hex.DecodeString(k.Crypto.CipherText)
	if err != nil {
		return wallet.Seed{}, errors.Wrap(err, "ciphertext")
	}
	nonce, err := hex.DecodeString(k.Crypto.Nonce)
	if err != nil {
		return wallet.Seed{}, errors.Wrap(err, "nonce")
	}
	params := k.Crypto.ScryptParams
	salt, err := hex.DecodeString(params.Salt)
	if err != nil {
		return wallet.Seed{}, errors.Wrap(err, "salt")
	}

	derivedKey, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, params.KeyLen)
	if err != nil {
		return wallet.Seed{}, errors.Wrap(err, "derive key")
	}

	plain, err := vcrypto.AesGCMDecrypt(derivedKey, cipherData, nonce)
	if err != nil {
		return wallet.Seed{}, walleterrors.ErrDecryptSeed
	}
	seed, err := wallet.BytesToSeed(plain)
	if err != nil {
		return wallet.Seed{}, err
	}
	if wallet.NewAccount(seed, 0).Address().String() != k.PrimaryAddress {
		return wallet.Seed{}, walleterrors.ErrDecryptSeed
	}
	return seed, nil
}

func EncryptSeed(seed wallet.Seed, passphrase string, useLightScrypt bool) ([]byte, error) {
	n := StandardScryptN
	p := StandardScryptP
	if useLightScrypt {
		n = LightScryptN
		p = LightScryptP
	}
	salt := vcrypto.GetEntropyCSPRNG(32)
	derivedKey, err := scrypt.Key([]byte(passphrase), salt, n, scryptR, p, scryptKeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "derive key")
	}

	ciphertext, nonce, err := vcrypto.AesGCMEncrypt(derivedKey, seed[:])
	if err != nil {
		return nil, err
	}

	return json.Marshal(entropyJSON{
		PrimaryAddress: wallet.NewAccount(seed, 0).Address().String(),
		Crypto: cryptoJSON{
			CipherName: aesMode,
			CipherText: hex.EncodeToString(ciphertext),
			Nonce:      hex.EncodeToString(nonce),
			KDF:        scryptName,
			ScryptParams: scryptParams{
				N:      n,
				R:      scryptR,
				P:      p,
				KeyLen: scryptKeyLen,
				Salt:   hex.EncodeToString(salt),
			},
		},
		Version:   storeVersion,
		Timestamp: time.Now().UTC().Unix(),
	})
}

func parseJson(keyjson []byte) (*entropyJSON, error) {
	k := new(entropyJSON)
	if err := json.Unmarshal(keyjson, k); err != nil {
		return nil, errors.Wrap(err, "parse seed store")
	}
	if k.Version != storeVersion {
		return nil, walleterrors.ErrStoreVersion
	}
	if !types.IsValidAddress(k.PrimaryAddress) {
		return nil, fmt.Errorf("address invalid: %v", k.PrimaryAddress)
	}
	if k.Crypto.CipherName != aesMode {
		return nil, fmt.Errorf("cipherName error: %v", k.Crypto.CipherName)
	}
	if k.Crypto.KDF != scryptName {
		return nil, fmt.Errorf("kdf error: %v", k.Crypto.KDF)
	}
	if err := checkScryptParams(k.Crypto.ScryptParams); err != nil {
		return nil, err
	}
	return k, nil
}

// checkScryptParams accepts only the parameter sets EncryptSeed writes.
func checkScryptParams(params scryptParams) error {
	if params.KeyLen != scryptKeyLen {
		return fmt.Errorf("scrypt keylen error: %v", params.KeyLen)
	}
	if params.R != scryptR {
		return fmt.Errorf("scrypt r error: %v", params.R)
	}
	standard := params.N == StandardScryptN && params.P == StandardScryptP
	light := params.N == LightScryptN && params.P == LightScryptP
	if !standard && !light {
		return fmt.Errorf("scrypt n, p error: %v, %v", params.N, params.P)
	}
	return nil
}

func writeKeyFile(file string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".tmp")
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	f.Close()
	return os.Rename(f.Name(), file)
}
