package exotic

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Every interchange form carries the canonical string, never the
// small-integer form: four of the ten tiers have no numeric representation.

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(data []byte) error {
	parsed, err := ParseRarity(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rarity) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.String())
}

func (r *Rarity) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rarity) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.String())
}

func (r *Rarity) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rarity) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

func (r *Rarity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
