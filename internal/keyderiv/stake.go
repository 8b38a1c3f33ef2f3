package keyderiv

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

// Network selects the address discriminator.
type Network byte

const (
	Testnet Network = 0
	Mainnet Network = 1
)

// Stake derivation path: m/1852'/1815'/0'/2/0 (CIP-1852 purpose,
// Cardano coin type, first account, stake role, first index).
var stakePath = [...]uint32{
	HardenedOffset + 1852,
	HardenedOffset + 1815,
	HardenedOffset + 0,
	2,
	0,
}

const credentialLen = 28

// HRP returns the bech32 human-readable prefix for stake addresses.
func (n Network) HRP() string {
	if n == Mainnet {
		return "stake"
	}
	return "stake_test"
}

// StakeAddress derives the stake address for checksum-valid entropy.
// The result is fully deterministic in the entropy; any internal
// failure is a programming error and panics.
func StakeAddress(entropy []byte, network Network) string {
	key := RootKey(entropy)
	for _, index := range stakePath {
		key = key.Derive(index)
	}

	digest, err := blake2b.New(credentialLen, nil)
	if err != nil {
		panic(err)
	}
	digest.Write(key.PublicKey())
	credential := digest.Sum(nil)

	// Shelley stake address: key-hash credential, header 0b1110_0000
	// plus the network id.
	payload := make([]byte, 0, 1+credentialLen)
	payload = append(payload, 0b1110_0000|byte(network))
	payload = append(payload, credential...)

	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		panic(err)
	}
	addr, err := bech32.Encode(network.HRP(), conv)
	if err != nil {
		panic(err)
	}
	return addr
}
