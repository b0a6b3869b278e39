package chain

import (
	"bytes"
	"fmt"
	"math"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

// Hand-rolled SCALE decoding for the few storage values this client reads.
// The identity registration is decoded field-by-field up to the display
// name; everything after display is irrelevant here and left unread.

func decodeAccountID(raw []byte) ([32]byte, error) {
	var acct [32]byte
	dec := scale.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&acct); err != nil {
		return acct, fmt.Errorf("decode account id: %w", err)
	}
	return acct, nil
}

func decodeTimestampMillis(raw []byte) (uint64, error) {
	var ms types.U64
	dec := scale.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&ms); err != nil {
		return 0, fmt.Errorf("decode timestamp: %w", err)
	}
	return uint64(ms), nil
}

func decodeU128Saturating(raw []byte) (uint64, error) {
	var v types.U128
	dec := scale.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("decode u128: %w", err)
	}
	if !v.IsUint64() {
		return math.MaxUint64, nil
	}
	return v.Uint64(), nil
}

func decodeU256Saturating(raw []byte) (uint64, error) {
	var v types.U256
	dec := scale.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("decode u256: %w", err)
	}
	if !v.IsUint64() {
		return math.MaxUint64, nil
	}
	return v.Uint64(), nil
}

// decodeIdentityInfo extracts (discord, display) from a pallet_identity
// Registration value. Discord lives in the first "additional" entry by
// chain convention; both fields are nil unless stored as Raw data.
func decodeIdentityInfo(raw []byte) (model.IdentityInfo, error) {
	var info model.IdentityInfo
	dec := scale.NewDecoder(bytes.NewReader(raw))

	// judgements: Vec<(RegistrarIndex, Judgement)>
	count, err := dec.DecodeUintCompact()
	if err != nil {
		return info, fmt.Errorf("decode judgements length: %w", err)
	}
	for i := uint64(0); i < count.Uint64(); i++ {
		var registrar types.U32
		if err := dec.Decode(&registrar); err != nil {
			return info, fmt.Errorf("decode registrar index: %w", err)
		}
		tag, err := dec.ReadOneByte()
		if err != nil {
			return info, fmt.Errorf("decode judgement tag: %w", err)
		}
		// FeePaid carries a balance; the other variants are bare.
		if tag == 1 {
			var fee types.U128
			if err := dec.Decode(&fee); err != nil {
				return info, fmt.Errorf("decode judgement fee: %w", err)
			}
		}
	}

	// deposit: Balance
	var deposit types.U128
	if err := dec.Decode(&deposit); err != nil {
		return info, fmt.Errorf("decode deposit: %w", err)
	}

	// info.additional: Vec<(Data, Data)>
	additional, err := dec.DecodeUintCompact()
	if err != nil {
		return info, fmt.Errorf("decode additional length: %w", err)
	}
	for i := uint64(0); i < additional.Uint64(); i++ {
		if _, err := decodeData(dec); err != nil {
			return info, fmt.Errorf("decode additional key: %w", err)
		}
		value, err := decodeData(dec)
		if err != nil {
			return info, fmt.Errorf("decode additional value: %w", err)
		}
		if i == 0 {
			info.Discord = value
		}
	}

	display, err := decodeData(dec)
	if err != nil {
		return info, fmt.Errorf("decode display: %w", err)
	}
	info.Display = display

	return info, nil
}

// decodeData reads a pallet_identity Data enum: None, Raw0..Raw32, or one
// of the 32-byte hash variants. Only Raw yields a value.
func decodeData(dec *scale.Decoder) (*string, error) {
	tag, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}
	switch {
	case tag == 0:
		return nil, nil
	case tag >= 1 && tag <= 33:
		buf, err := readBytes(dec, int(tag)-1)
		if err != nil {
			return nil, err
		}
		s := string(buf)
		return &s, nil
	case tag >= 34 && tag <= 37:
		if _, err := readBytes(dec, 32); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("identity data: unknown tag %d", tag)
	}
}

func readBytes(dec *scale.Decoder, n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := dec.ReadOneByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}
