package token

import (
	"bytes"
	"fmt"
)

// Scan reads one complete record from the head of buf.
//
// It returns the record and the number of bytes it occupies. When buf holds
// only a prefix of a record, Scan returns n == 0 and a nil error: nothing is
// consumed and the caller should retry once more bytes are available. An
// unrecognized first byte is an error immediately, regardless of how much
// follows it.
//
// Text and raw payloads are delimited by their 12-digit byte count, never
// by newlines, so they may contain any byte.
func Scan(buf []byte) (rec Record, n int, err error) {
	if len(buf) == 0 {
		return rec, 0, nil
	}
	m := Marker(buf[0])
	switch m {
	case MRootClose, MBranchClose:
		if len(buf) < 2 {
			return rec, 0, nil
		}
		if buf[1] != '\n' {
			return rec, 0, fmt.Errorf("%w: %s not followed by newline", ErrMalformedRecord, m)
		}
		return Record{Marker: m}, 2, nil

	case MRootOpen, MBranchOpen:
		name, off, err := scanName(buf)
		if err != nil || off == 0 {
			return rec, 0, err
		}
		if len(buf) <= off {
			return rec, 0, nil
		}
		if buf[off] != '\n' {
			return rec, 0, fmt.Errorf("%w: trailing bytes after %s name %q", ErrMalformedRecord, m, name)
		}
		return Record{Marker: m, Name: name}, off + 1, nil

	case MValue, MAttr:
		return scanScalar(buf, m)
	}
	return rec, 0, fmt.Errorf("%w: unrecognized marker %q", ErrMalformedRecord, buf[0])
}

func scanScalar(buf []byte, m Marker) (rec Record, n int, err error) {
	name, off, err := scanName(buf)
	if err != nil || off == 0 {
		return rec, 0, err
	}
	if len(buf) <= off {
		return rec, 0, nil
	}
	ind := Indicator(buf[off])
	if !ind.Valid() {
		return rec, 0, fmt.Errorf("%w: %q for %q", ErrUnrecognizedValueType, byte(ind), name)
	}
	if m == MAttr && !ind.ValidAttr() {
		return rec, 0, fmt.Errorf("%w: %s attribute %q", ErrUnrecognizedValueType, ind, name)
	}
	off++
	rec = Record{Marker: m, Name: name, Indicator: ind}

	if !ind.LengthPrefixed() {
		i := bytes.IndexByte(buf[off:], '\n')
		if i < 0 {
			return Record{}, 0, nil
		}
		rec.Payload = buf[off : off+i]
		return rec, off + i + 1, nil
	}

	if len(buf) < off+PayloadLenWidth {
		return Record{}, 0, nil
	}
	size, ok := parseDigits(buf[off : off+PayloadLenWidth])
	if !ok {
		return Record{}, 0, fmt.Errorf("%w: bad length field %q for %q", ErrMalformedRecord,
			buf[off:off+PayloadLenWidth], name)
	}
	off += PayloadLenWidth
	if int64(len(buf)-off) < size+1 {
		return Record{}, 0, nil
	}
	end := off + int(size)
	if buf[end] != '\n' {
		if m == MAttr {
			return Record{}, 0, fmt.Errorf("%w: %q declares %d bytes", ErrAttributeLengthMismatch, name, size)
		}
		return Record{}, 0, fmt.Errorf("%w: %s %q not terminated after %d bytes", ErrMalformedRecord, ind, name, size)
	}
	rec.Payload = buf[off:end]
	return rec, end + 1, nil
}

// scanName reads the 4-digit length and the name following the marker. A
// zero offset with a nil error means more bytes are needed.
func scanName(buf []byte) (string, int, error) {
	if len(buf) < 1+NameLenWidth {
		return "", 0, nil
	}
	size, ok := parseDigits(buf[1 : 1+NameLenWidth])
	if !ok {
		return "", 0, fmt.Errorf("%w: bad name length %q", ErrMalformedRecord, buf[1:1+NameLenWidth])
	}
	end := 1 + NameLenWidth + int(size)
	if len(buf) < end {
		return "", 0, nil
	}
	return string(buf[1+NameLenWidth : end]), end, nil
}

func parseDigits(d []byte) (int64, bool) {
	var v int64
	for _, c := range d {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int64(c-'0')
	}
	return v, true
}
