// Package encode writes CS trees.
//
// # Usage
//
//	// Encode a tree to CS wire bytes
//	err := encode.Encode(root, w)
//
//	// Encode the nested map form as YAML
//	err := encode.Encode(root, w, encode.EncodeFormat(format.YAMLFormat))
//
//	// Pull records one at a time
//	s := encode.NewSerializer(root)
//	for {
//	    rec, err := s.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// A raw value whose payload is a live [ir.RawSource] is never buffered
// whole: the serializer emits the record header with the declared length
// and then forwards the source's bytes as they are read.
//
// # Related Packages
//
//   - github.com/signadot/cs-format/ir - tree model
//   - github.com/signadot/cs-format/parse - parse CS bytes to a tree
package encode
