// Package parse builds CS trees from byte streams.
//
// # Usage
//
//	// Parse a complete buffer
//	root, err := parse.Parse(data)
//
//	// Feed chunks as they arrive
//	p := parse.NewParser()
//	for chunk := range chunks {
//	    if _, err := p.Write(chunk); err != nil {
//	        return err
//	    }
//	}
//	root, err := p.Finish()
//
// The parser holds at most one incomplete record beyond what it has already
// applied, so a chunk boundary may fall anywhere, including inside a length
// field or a payload. The resulting tree does not depend on how the input
// was split.
//
// Failures are reported as *Error, carrying the stream offset of the
// offending record and wrapping one of the Err* sentinels:
//
//	if errors.Is(err, parse.ErrIncompleteStream) { ... }
//
// # Related Packages
//
//   - github.com/signadot/cs-format/ir - tree model
//   - github.com/signadot/cs-format/encode - write trees back to bytes
package parse
