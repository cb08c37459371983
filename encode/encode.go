package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/signadot/cs-format/format"
	"github.com/signadot/cs-format/ir"
)

var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("encode: CBOR encoder initialization failed: " + err.Error())
	}
}

// Encode writes node to w. The default format is CS; the other formats
// export the nested map form of the tree, except IRFormat which writes the
// inspection JSON.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.CSFormat:
		_, err := NewSerializer(node, opts...).WriteTo(w)
		return err
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", indentString(es.indent))
		return enc.Encode(node.ToDict())
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(node.ToDict(), yaml.Indent(es.indent))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.CBORFormat:
		d, err := cborEncMode.Marshal(node.ToDict())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.IRFormat:
		var d []byte
		var err error
		if es.indent > 0 {
			d, err = json.MarshalIndent(node, "", indentString(es.indent))
		} else {
			d, err = json.Marshal(node)
		}
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func indentString(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}
