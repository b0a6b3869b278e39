package chain

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// SS58 address codec for the chain's fixed network format. Only the
// single-byte (0..63) and two-byte (64..16383) prefix encodings are
// supported; the chain uses prefix 71.

const ss58ChecksumPreamble = "SS58PRE"

var (
	errSS58Checksum = errors.New("ss58: checksum mismatch")
	errSS58Length   = errors.New("ss58: invalid address length")
)

// EncodeSS58 renders a 32-byte account id as an SS58 address under the
// given network prefix.
func EncodeSS58(pubkey [32]byte, prefix uint16) string {
	var data []byte
	if prefix < 64 {
		data = []byte{byte(prefix)}
	} else {
		// Two-byte form: 14-bit ident split across both bytes.
		first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte(prefix&0b0000_0000_0000_0011)<<6
		data = []byte{first, second}
	}
	data = append(data, pubkey[:]...)
	return base58.Encode(append(data, ss58Checksum(data)...))
}

// DecodeSS58 recovers the 32-byte account id from an SS58 address,
// verifying both the checksum and the expected network prefix.
func DecodeSS58(address string, prefix uint16) ([32]byte, error) {
	var pubkey [32]byte

	raw := base58.Decode(address)
	if len(raw) < 35 {
		return pubkey, errSS58Length
	}

	var identLen int
	var ident uint16
	switch {
	case raw[0] < 64:
		identLen = 1
		ident = uint16(raw[0])
	case raw[0] < 128:
		identLen = 2
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0b0011_1111
		ident = uint16(lower) | uint16(upper)<<8
	default:
		return pubkey, fmt.Errorf("ss58: reserved prefix byte %#x", raw[0])
	}

	if ident != prefix {
		return pubkey, fmt.Errorf("ss58: address prefix %d, want %d", ident, prefix)
	}

	body := raw[:len(raw)-2]
	if len(body)-identLen != 32 {
		return pubkey, errSS58Length
	}
	if !bytes.Equal(ss58Checksum(body), raw[len(raw)-2:]) {
		return pubkey, errSS58Checksum
	}

	copy(pubkey[:], body[identLen:])
	return pubkey, nil
}

func ss58Checksum(data []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write([]byte(ss58ChecksumPreamble))
	h.Write(data)
	return h.Sum(nil)[:2]
}
