package token

import (
	"fmt"
	"strconv"
)

// Marker is the first byte of every record.
type Marker byte

const (
	MRootOpen    Marker = 'S'
	MRootClose   Marker = 's'
	MBranchOpen  Marker = 'B'
	MBranchClose Marker = 'b'
	MValue       Marker = 'V'
	MAttr        Marker = 'A'
)

func (m Marker) String() string {
	s, ok := map[Marker]string{
		MRootOpen:    "RootOpen",
		MRootClose:   "RootClose",
		MBranchOpen:  "BranchOpen",
		MBranchClose: "BranchClose",
		MValue:       "Value",
		MAttr:        "Attr",
	}[m]
	if ok {
		return s
	}
	return fmt.Sprintf("<marker %q>", byte(m))
}

func IsMarker(b byte) bool {
	switch Marker(b) {
	case MRootOpen, MRootClose, MBranchOpen, MBranchClose, MValue, MAttr:
		return true
	}
	return false
}

// Indicator follows the name of value and attribute records and selects
// the payload encoding.
type Indicator byte

const (
	IInt       Indicator = 'I'
	IInt64     Indicator = 'L'
	IFloat     Indicator = 'F'
	IBool      Indicator = 'B'
	ITimestamp Indicator = 'S'
	IText      Indicator = 'T'
	IRaw       Indicator = 'R'
)

func (i Indicator) String() string {
	s, ok := map[Indicator]string{
		IInt:       "Int",
		IInt64:     "Int64",
		IFloat:     "Float",
		IBool:      "Bool",
		ITimestamp: "Timestamp",
		IText:      "Text",
		IRaw:       "Raw",
	}[i]
	if ok {
		return s
	}
	return fmt.Sprintf("<indicator %q>", byte(i))
}

func (i Indicator) Valid() bool {
	switch i {
	case IInt, IInt64, IFloat, IBool, ITimestamp, IText, IRaw:
		return true
	}
	return false
}

// ValidAttr reports whether i may follow an attribute name.
func (i Indicator) ValidAttr() bool {
	switch i {
	case IInt, IInt64, IFloat, IText:
		return true
	}
	return false
}

// LengthPrefixed reports whether the payload is preceded by a byte count
// rather than terminated by the next newline.
func (i Indicator) LengthPrefixed() bool {
	return i == IText || i == IRaw
}

const (
	NameLenWidth    = 4
	PayloadLenWidth = 12

	MaxNameLen    = 9999
	MaxPayloadLen = 999999999999
)

// Record is one complete wire unit. Payload aliases the scanned buffer and
// is only valid until that buffer is modified.
type Record struct {
	Marker    Marker
	Name      string
	Indicator Indicator
	Payload   []byte
}

func (r *Record) String() string {
	switch r.Marker {
	case MRootClose, MBranchClose:
		return r.Marker.String()
	case MRootOpen, MBranchOpen:
		return r.Marker.String() + " " + strconv.Quote(r.Name)
	}
	p := r.Payload
	if len(p) > 32 {
		return fmt.Sprintf("%s %q %s %q... (%d bytes)", r.Marker, r.Name, r.Indicator, p[:32], len(p))
	}
	return fmt.Sprintf("%s %q %s %q", r.Marker, r.Name, r.Indicator, p)
}
