package posmap

import (
	"github.com/yaklabco/proofline/pkg/decoration"
	"github.com/yaklabco/proofline/pkg/mdast"
	"github.com/yaklabco/proofline/pkg/textrange"
	"github.com/yaklabco/proofline/pkg/transform"
)

// Map converts plain-text ranges into structural decoration ranges for doc.
//
// Each range is clipped to every text leaf it intersects and yields one decoration
// range per leaf, so a range spanning styled text or several blocks is split. Output
// is ordered by leaf, then by input order. Empty ranges and ranges touching no leaf
// produce nothing.
func Map(doc *mdast.Node, ranges []textrange.Range) []decoration.Range {
	if len(ranges) == 0 {
		return []decoration.Range{}
	}
	return Build(doc).Map(ranges)
}

// Map converts plain-text ranges into structural decoration ranges. See Map.
func (idx *Index) Map(ranges []textrange.Range) []decoration.Range {
	out := make([]decoration.Range, 0, len(ranges))
	if len(ranges) == 0 {
		return out
	}

	for _, leaf := range idx.leaves {
		for _, r := range ranges {
			if r.IsEmpty() || r.End <= leaf.TextStart || r.Start >= leaf.TextEnd {
				continue
			}

			from := max(r.Start, leaf.TextStart)
			to := min(r.End, leaf.TextEnd)
			out = append(out, decoration.Range{
				From: leaf.Pos + (from - leaf.TextStart),
				To:   leaf.Pos + (to - leaf.TextStart),
			})
		}
	}

	return out
}

// Position converts a plain-text offset into a structural position.
//
// An offset on a block's trailing separator maps to the end of that block's content.
// Offsets past the end of the text clamp to the end of the last block.
func (idx *Index) Position(offset int) int {
	if len(idx.blocks) == 0 {
		return 0
	}
	offset = max(offset, 0)

	blockIdx := len(idx.blocks) - 1
	for i, b := range idx.blocks {
		if offset <= b.TextEnd {
			blockIdx = i
			break
		}
	}
	block := idx.blocks[blockIdx]
	if offset >= block.TextEnd {
		return block.ContentEnd
	}
	if offset <= block.TextStart {
		return block.ContentStart
	}

	var last *Leaf
	for i := range idx.leaves {
		leaf := &idx.leaves[i]
		if leaf.Block != blockIdx || leaf.TextStart > offset {
			continue
		}
		if offset < leaf.TextEnd {
			return leaf.Pos + (offset - leaf.TextStart)
		}
		last = leaf
	}
	if last != nil {
		return last.Pos + last.Len()
	}
	return block.ContentStart
}

// EditStep describes the document edit that turned the document indexed by old into
// the one indexed by updated, given the plain-text change between them.
//
// The step replaces the structural span covering the changed text in the old document
// with however many units make the sizes agree. Edits that only touch text inside a
// block therefore map to a span of exactly the changed runes.
func EditStep(old, updated *Index, change transform.Change) transform.Step {
	from := old.Position(change.Start)
	to := max(old.Position(change.OldEnd), from)
	size := updated.Size() - old.Size() + (to - from)
	if size < 0 {
		to -= size
		size = 0
	}
	return transform.Step{From: from, To: min(to, old.Size()), Size: size}
}
