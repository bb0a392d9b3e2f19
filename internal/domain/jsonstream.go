package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// AppendMember adds key with the pre-encoded value to the encoded JSON
// object obj. obj is reused. An empty value is written as null.
func AppendMember(obj []byte, key string, value []byte) ([]byte, error) {
	if len(obj) < 2 || obj[0] != '{' || obj[len(obj)-1] != '}' {
		return nil, fmt.Errorf("cannot add %q: not a JSON object", key)
	}
	if len(value) == 0 {
		value = jsonNull
	}
	buf := obj[:len(obj)-1]
	if len(buf) > 1 {
		buf = append(buf, ',')
	}
	buf = appendString(buf, key)
	buf = append(buf, ':')
	buf = append(buf, value...)
	return append(buf, '}'), nil
}

func appendString(buf []byte, s string) []byte {
	quoted, _ := json.Marshal(s)
	return append(buf, quoted...)
}

// openObject reads the start of an object. It reports false for null.
func openObject(dec *json.Decoder) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, err
	}
	switch tok {
	case nil:
		return false, nil
	case json.Delim('{'):
		return true, nil
	}
	return false, fmt.Errorf("expected object, got %v", tok)
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %v, got %v", want, tok)
	}
	return nil
}

func skipValue(dec *json.Decoder) error {
	var skip json.RawMessage
	return dec.Decode(&skip)
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}
