package captions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ParseJSON3Bytes parse un blob json3 ([]byte) et retourne la structure brute.
//
// Utilise json.Decoder sur un bytes.Reader : les données sont déjà 100% en
// mémoire, adapté aux pistes de captions (quelques centaines de Ko max).
// Pas de DisallowUnknownFields : le JSON YouTube contient beaucoup de champs
// non mappés qu'on veut ignorer proprement.
func ParseJSON3Bytes(b []byte) (rawJSON3, error) {
	var raw rawJSON3
	if len(b) == 0 {
		return raw, fmt.Errorf("ParseJSON3Bytes: empty input")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("ParseJSON3Bytes: decode error: %w", err)
	}
	return raw, nil
}

// ParseJSON3Reader parse depuis un io.Reader (décodage depuis un flux).
func ParseJSON3Reader(r io.Reader) (rawJSON3, error) {
	var raw rawJSON3
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("ParseJSON3Reader: decode error: %w", err)
	}
	return raw, nil
}
