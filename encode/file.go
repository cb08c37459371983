package encode

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"github.com/signadot/cs-format/ir"
)

// WriteFile encodes node to path, replacing any existing file atomically.
func WriteFile(path string, node *ir.Node, perm os.FileMode, opts ...EncodeOption) error {
	f, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Cleanup()
	if err := Encode(node, f, opts...); err != nil {
		return err
	}
	return f.CloseAtomicallyReplace()
}
