package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec - формат кадров на проводе.
type Codec string

const (
	CodecJSON    Codec = "json"
	CodecMsgpack Codec = "msgpack"
)

// ParseCodec возвращает кодек по имени. Пустое имя - JSON.
func ParseCodec(name string) (Codec, error) {
	switch Codec(name) {
	case "", CodecJSON:
		return CodecJSON, nil
	case CodecMsgpack:
		return CodecMsgpack, nil
	}
	return "", fmt.Errorf("unknown codec %q", name)
}

// Binary - true, если кадры этого кодека нужно слать бинарными сообщениями.
func (c Codec) Binary() bool {
	return c == CodecMsgpack
}

// Encode сериализует v. Для msgpack используются те же json-теги,
// чтобы у обоих форматов были одинаковые имена полей.
func Encode(c Codec, v any) ([]byte, error) {
	switch c {
	case CodecMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("msgpack encode: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return json.Marshal(v)
	}
}

// Decode - обратная операция к Encode.
func Decode(c Codec, data []byte, v any) error {
	switch c {
	case CodecMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("msgpack decode: %w", err)
		}
		return nil
	default:
		return json.Unmarshal(data, v)
	}
}

// wireCommand - ClientCommand в том виде, в каком его присылает msgpack-клиент.
type wireCommand struct {
	Action  string             `json:"action"`
	Payload msgpack.RawMessage `json:"payload"`
}

// DecodeCommand читает команду клиента из кадра.
// У msgpack payload может прийти картой или уже готовым JSON (bin/str),
// в обоих случаях дальше он идет как json.RawMessage.
func DecodeCommand(c Codec, data []byte) (ClientCommand, error) {
	if c != CodecMsgpack {
		var cmd ClientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			return ClientCommand{}, fmt.Errorf("json decode: %w", err)
		}
		return cmd, nil
	}

	var wire wireCommand
	if err := Decode(c, data, &wire); err != nil {
		return ClientCommand{}, err
	}

	cmd := ClientCommand{Action: wire.Action}
	if len(wire.Payload) == 0 {
		return cmd, nil
	}

	var payload any
	if err := Decode(c, wire.Payload, &payload); err != nil {
		return ClientCommand{}, err
	}

	switch p := payload.(type) {
	case nil:
	case []byte:
		cmd.Payload = json.RawMessage(p)
	case string:
		cmd.Payload = json.RawMessage(p)
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			return ClientCommand{}, fmt.Errorf("payload: %w", err)
		}
		cmd.Payload = raw
	}
	return cmd, nil
}
