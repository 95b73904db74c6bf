package types

import (
	"encoding/json"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue adapts any JSON-serializable type to a collections value
// codec. State stays JSON on disk across all modules.
func JSONValue[T any](name string) collcodec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

type jsonValue[T any] struct {
	name string
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	bz, _ := json.Marshal(value)
	return string(bz)
}

func (c jsonValue[T]) ValueType() string {
	return c.name
}
