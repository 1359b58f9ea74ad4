package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encoding selects how frames are serialized for one client
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingMsgpack
	encodingCount
)

// ParseEncoding maps the ?enc= query value to an Encoding; unknown values mean JSON
func ParseEncoding(s string) Encoding {
	if s == "msgpack" {
		return EncodingMsgpack
	}
	return EncodingJSON
}

func (e Encoding) String() string {
	if e == EncodingMsgpack {
		return "msgpack"
	}
	return "json"
}

// Frame is one WebSocket message. Binary frames carry msgpack, text frames JSON.
type Frame struct {
	Binary bool
	Data   []byte
}

// Encode serializes msg for the given encoding.
// msgpack reuses the json struct tags so both encodings share field names.
func Encode(enc Encoding, msg any) (Frame, error) {
	if enc == EncodingMsgpack {
		var buf bytes.Buffer
		e := msgpack.NewEncoder(&buf)
		e.SetCustomStructTag("json")
		if err := e.Encode(msg); err != nil {
			return Frame{}, fmt.Errorf("msgpack encode: %w", err)
		}
		return Frame{Binary: true, Data: buf.Bytes()}, nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return Frame{}, fmt.Errorf("json encode: %w", err)
	}
	return Frame{Data: data}, nil
}

// Decode parses a frame into v, choosing the codec by frame kind
func Decode(f Frame, v any) error {
	if f.Binary {
		d := msgpack.NewDecoder(bytes.NewReader(f.Data))
		d.SetCustomStructTag("json")
		if err := d.Decode(v); err != nil {
			return fmt.Errorf("msgpack decode: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(f.Data, v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	return nil
}
