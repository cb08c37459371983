package encode

import (
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/cs-format/ir"
	"github.com/signadot/cs-format/token"
)

// AppendRecord appends the record for n to dst. For a root or branch this
// is the opening record only; see AppendClose.
func AppendRecord(dst []byte, n *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	if n.Type.IsBranch() {
		return AppendOpen(dst, n)
	}
	return appendScalar(dst, n, es)
}

// FormatRecord returns the record for n as a new slice.
func FormatRecord(n *ir.Node, opts ...EncodeOption) ([]byte, error) {
	return AppendRecord(nil, n, opts...)
}

func AppendOpen(dst []byte, n *ir.Node) ([]byte, error) {
	switch n.Type {
	case ir.RootType:
		dst, err := appendName(dst, token.MRootOpen, n.Name)
		if err != nil {
			return dst, err
		}
		return append(dst, '\n'), nil
	case ir.BranchType:
		dst, err := appendName(dst, token.MBranchOpen, n.Name)
		if err != nil {
			return dst, err
		}
		return append(dst, '\n'), nil
	}
	return dst, fmt.Errorf("%w: %s %q has no open record", ir.ErrInvalidKind, n.Type, n.Name)
}

func AppendClose(dst []byte, n *ir.Node) []byte {
	if n.Type == ir.RootType {
		return append(dst, byte(token.MRootClose), '\n')
	}
	return append(dst, byte(token.MBranchClose), '\n')
}

// AppendRawHeader appends everything of a raw value record preceding its
// payload.
func AppendRawHeader(dst []byte, name string, size int64) ([]byte, error) {
	dst, err := appendName(dst, token.MValue, name)
	if err != nil {
		return dst, err
	}
	return appendLength(append(dst, byte(token.IRaw)), name, size)
}

func appendScalar(dst []byte, n *ir.Node, es *EncState) ([]byte, error) {
	m := token.MValue
	if n.Type.IsAttr() {
		m = token.MAttr
	}
	var ind token.Indicator
	switch n.Type {
	case ir.IntType, ir.AttrIntType:
		ind = token.IInt
	case ir.Int64Type, ir.AttrInt64Type:
		ind = token.IInt64
	case ir.FloatType, ir.AttrFloatType:
		ind = token.IFloat
	case ir.BoolType:
		ind = token.IInt
		if es.nativeBool {
			ind = token.IBool
		}
	case ir.TimestampType:
		ind = token.ITimestamp
	case ir.TextType, ir.AttrTextType:
		ind = token.IText
	case ir.RawType:
		if n.Source != nil {
			return dst, fmt.Errorf("%w: %q", ir.ErrNotMaterialized, n.Name)
		}
		ind = token.IRaw
	default:
		return dst, fmt.Errorf("%w: %s %q is not a scalar", ir.ErrInvalidKind, n.Type, n.Name)
	}
	start := len(dst)
	dst, err := appendName(dst, m, n.Name)
	if err != nil {
		return dst, err
	}
	dst = append(dst, byte(ind))

	switch n.Type {
	case ir.IntType, ir.AttrIntType, ir.Int64Type, ir.AttrInt64Type, ir.TimestampType:
		dst = strconv.AppendInt(dst, n.Int64, 10)
	case ir.FloatType:
		if math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
			return dst[:start], fmt.Errorf("%w: %q", ErrNonFinite, n.Name)
		}
		dst = appendTruncated(dst, n.Float64)
	case ir.AttrFloatType:
		if math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
			return dst[:start], fmt.Errorf("%w: %q", ErrNonFinite, n.Name)
		}
		dst = strconv.AppendFloat(dst, n.Float64, 'f', 6, 64)
	case ir.BoolType:
		if n.Bool {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	case ir.TextType, ir.AttrTextType:
		dst, err = appendLength(dst, n.Name, int64(len(n.String)))
		if err != nil {
			return dst[:start], err
		}
		dst = append(dst, n.String...)
	case ir.RawType:
		dst, err = appendLength(dst, n.Name, int64(len(n.Bytes)))
		if err != nil {
			return dst[:start], err
		}
		dst = append(dst, n.Bytes...)
	}
	return append(dst, '\n'), nil
}

// float values are written as their integer part
func appendTruncated(dst []byte, f float64) []byte {
	t := math.Trunc(f)
	if t == 0 {
		return append(dst, '0')
	}
	return strconv.AppendFloat(dst, t, 'f', 0, 64)
}

func appendName(dst []byte, m token.Marker, name string) ([]byte, error) {
	if len(name) > token.MaxNameLen {
		return dst, fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(name))
	}
	dst = append(dst, byte(m))
	dst = appendPadded(dst, int64(len(name)), token.NameLenWidth)
	return append(dst, name...), nil
}

func appendLength(dst []byte, name string, size int64) ([]byte, error) {
	if size < 0 || size > token.MaxPayloadLen {
		return dst, fmt.Errorf("%w: %q has %d bytes", ErrPayloadTooLarge, name, size)
	}
	return appendPadded(dst, size, token.PayloadLenWidth), nil
}

func appendPadded(dst []byte, v int64, width int) []byte {
	var b [20]byte
	d := strconv.AppendInt(b[:0], v, 10)
	for i := len(d); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, d...)
}
