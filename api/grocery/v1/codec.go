package groceryv1

import (
	"bytes"
	"encoding/gob"

	"google.golang.org/grpc/encoding"
)

// CodecName — имя кодека, передаётся в content-subtype gRPC вызова
// (grpc.CallContentSubtype проставляется в client stubs автоматически)
const CodecName = "grocery-gob"

func init() {
	// Регистрируем кодек глобально: сервер начинает принимать вызовы
	// с content-subtype "grocery-gob" сразу после импорта пакета
	encoding.RegisterCodec(gobCodec{})
}

// gobCodec реализует grpc encoding.Codec поверх encoding/gob.
// Каждое сообщение кодируется независимо (свежий encoder на вызов),
// поэтому поток самодостаточен и не требует общего состояния
type gobCodec struct{}

func (gobCodec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (gobCodec) Name() string {
	return CodecName
}
