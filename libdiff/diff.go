package libdiff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/cs-format/debug"
	"github.com/signadot/cs-format/ir"
)

// Diff returns the changes which turn from into to, in tree order. It
// returns nil when the trees are equal.
func Diff(from, to *ir.Node) []Change {
	d := &differ{dmp: diffpatch.New()}
	d.node(from, to, ir.IndexPath{}, ir.IndexPath{})
	return d.changes
}

type differ struct {
	dmp     *diffpatch.DiffMatchPatch
	changes []Change
	dels    []Change
}

func (d *differ) node(from, to *ir.Node, fp, tp ir.IndexPath) {
	if from.Type != to.Type || from.Name != to.Name {
		d.replace(from, to, fp, tp)
		return
	}
	if from.Type.IsBranch() {
		d.entries(from, to, fp, tp)
		return
	}
	if !ir.Equal(from, to) {
		d.replace(from, to, fp, tp)
	}
}

func (d *differ) replace(from, to *ir.Node, fp, tp ir.IndexPath) {
	c := Change{Op: Replace, FromPath: fp, ToPath: tp, From: from, To: to}
	if from.Type == to.Type && (from.Type == ir.TextType || from.Type == ir.AttrTextType) {
		multi := strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n")
		c.Text = d.dmp.DiffCleanupSemantic(d.dmp.DiffMain(from.String, to.String, multi))
	}
	d.changes = append(d.changes, c)
}

// entries aligns the entries of two branches:
//
//  1. summarize each entry: branches by type and name, scalars by type, name
//     and value
//  2. diff the sequences of summaries
//  3. recurse into aligned branches
//  4. pair a deleted entry with an inserted one of the same type and name
//     as a replacement, recursing when they are branches
func (d *differ) entries(from, to *ir.Node, fp, tp ir.IndexPath) {
	outer := d.dels
	d.dels = nil
	defer func() { d.dels = outer }()

	fe, te := from.Entries(), to.Entries()
	m := map[string]rune{}
	diffs := d.dmp.DiffMainRunes(summaries(m, fe), summaries(m, te), false)
	if debug.Diff() {
		debug.Logf("diff %q: %d/%d entries, %d ops\n", from.Name, len(fe), len(te), len(diffs))
	}

	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				d.dels = append(d.dels, Change{Op: Delete, FromPath: fp.Append(fi), From: fe[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.insert(te[ti], tp.Append(ti))
				ti++
			}
		case diffpatch.DiffEqual:
			d.flush()
			for range n {
				d.node(fe[fi], te[ti], fp.Append(fi), tp.Append(ti))
				fi++
				ti++
			}
		}
	}
	d.flush()
}

func (d *differ) insert(e *ir.Node, p ir.IndexPath) {
	if len(d.dels) > 0 {
		del := d.dels[0]
		if del.From.Type == e.Type && del.From.Name == e.Name {
			d.dels = d.dels[1:]
			d.node(del.From, e, del.FromPath, p)
			return
		}
	}
	d.flush()
	d.changes = append(d.changes, Change{Op: Insert, ToPath: p, To: e})
}

func (d *differ) flush() {
	d.changes = append(d.changes, d.dels...)
	d.dels = d.dels[:0]
}

func summaries(m map[string]rune, entries []*ir.Node) []rune {
	rs := make([]rune, len(entries))
	for i, e := range entries {
		sum := summaryStr(e)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(e *ir.Node) string {
	switch {
	case e.Type.IsBranch():
		return e.Type.String() + "/" + e.Name
	case e.Type == ir.RawType && e.Source != nil:
		return fmt.Sprintf("%s/%s/%p", e.Type, e.Name, e.Source)
	case e.Type == ir.RawType:
		return e.Type.String() + "/" + e.Name + "/" + string(e.Bytes)
	}
	return e.Type.String() + "/" + e.Name + "/" + ir.DictValue(e)
}
