// Package libdiff computes structural differences between CS trees.
//
// The entries (attributes then children) of each pair of matching branches
// are summarized one rune per entry and aligned with a sequence diff.
// Aligned branches are compared recursively, so a change deep in a tree is
// reported at its own index path rather than as a replaced subtree.
package libdiff
