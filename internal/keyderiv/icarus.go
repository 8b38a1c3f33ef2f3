// Package keyderiv turns checksum-valid entropy into a Cardano stake
// address: Icarus master key generation, Ed25519-BIP32 child
// derivation along the fixed stake path, and bech32 address encoding.
package keyderiv

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/pbkdf2"
)

// HardenedOffset marks the start of the hardened index range.
const HardenedOffset = 0x80000000

const (
	rootIterations = 4096
	rootKeyLen     = 96
)

// XPrv is an extended private key: 32-byte left scalar, 32-byte right
// half, 32-byte chain code.
type XPrv [rootKeyLen]byte

// RootKey stretches entropy into the Icarus master key: PBKDF2 with
// HMAC-SHA512, the empty passphrase as password and the entropy as
// salt, 4096 iterations, 96 bytes of output, with the scalar bits
// clamped for the curve. This is the dominant per-candidate cost; the
// checksum gate exists to keep calls to it rare.
func RootKey(entropy []byte) XPrv {
	if len(entropy) < 4 || len(entropy) > 32 || len(entropy)%4 != 0 {
		panic(fmt.Sprintf("keyderiv: invalid entropy length %d", len(entropy)))
	}
	var key XPrv
	copy(key[:], pbkdf2.Key(nil, entropy, rootIterations, rootKeyLen, sha512.New))
	key[0] &= 0b1111_1000
	key[31] &= 0b0001_1111
	key[31] |= 0b0100_0000
	return key
}

// Derive returns the child key at index. Indices at or above
// HardenedOffset derive from the private halves, the rest from the
// public key (Ed25519-BIP32 derivation scheme V2, little-endian
// index serialization).
func (k XPrv) Derive(index uint32) XPrv {
	kl, kr, cc := k[:32], k[32:64], k[64:]

	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], index)

	var z, chain []byte
	if index >= HardenedOffset {
		z = hmacSHA512(cc, []byte{0x00}, kl, kr, idx[:])
		chain = hmacSHA512(cc, []byte{0x01}, kl, kr, idx[:])
	} else {
		pub := scalarBase(kl)
		z = hmacSHA512(cc, []byte{0x02}, pub, idx[:])
		chain = hmacSHA512(cc, []byte{0x03}, pub, idx[:])
	}

	var child XPrv
	addLeft(child[:32], kl, z[:28])
	addRight(child[32:64], kr, z[32:64])
	copy(child[64:], chain[32:])
	return child
}

// PublicKey returns the encoded Ed25519 public key for the left
// scalar.
func (k XPrv) PublicKey() []byte {
	return scalarBase(k[:32])
}

func hmacSHA512(key []byte, chunks ...[]byte) []byte {
	mac := hmac.New(sha512.New, key)
	for _, c := range chunks {
		mac.Write(c)
	}
	return mac.Sum(nil)
}

// addLeft computes kl + 8*zl over 256-bit little-endian integers,
// where zl is 28 bytes. Overflow beyond 2^256 is discarded.
func addLeft(dst, kl, zl []byte) {
	var zl8 [32]byte
	var shift uint16
	for i := 0; i < 28; i++ {
		v := uint16(zl[i])<<3 | shift
		zl8[i] = byte(v)
		shift = v >> 8
	}
	zl8[28] = byte(shift)

	var carry uint16
	for i := 0; i < 32; i++ {
		v := uint16(kl[i]) + uint16(zl8[i]) + carry
		dst[i] = byte(v)
		carry = v >> 8
	}
}

// addRight computes kr + zr over 256-bit little-endian integers.
func addRight(dst, kr, zr []byte) {
	var carry uint16
	for i := 0; i < 32; i++ {
		v := uint16(kr[i]) + uint16(zr[i]) + carry
		dst[i] = byte(v)
		carry = v >> 8
	}
}

// scalarBase computes [kl]B. The clamped left scalar can exceed the
// group order, so it is widened to 64 bytes and reduced mod L; the
// resulting point is identical.
func scalarBase(kl []byte) []byte {
	var wide [64]byte
	copy(wide[:], kl)
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	return new(edwards25519.Point).ScalarBaseMult(s).Bytes()
}
