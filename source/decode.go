package source

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode returns source text as UTF-8. A byte order mark selects UTF-8 or
// UTF-16 (either endianness) and is stripped; without one the input must
// already be UTF-8.
func Decode(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, errors.Wrap(err, "decode source")
	}
	return out, nil
}
