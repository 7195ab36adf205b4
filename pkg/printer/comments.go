package printer

import "jsprint/pkg/comments"

// emitLeadingComments and emitTrailingComments implement spec.md §4.5: the
// list emitter requests leading/trailing comments at specific byte
// positions from the comment store, and each comment is materialised
// exactly once via the pos_of_leading_comments dedup set (emittedComments
// here — spec.md names one set, but leading and trailing lookups can both
// resolve to the same underlying comment when a node sits between two
// list items, so both paths share it).

func (p *Printer) emitLeadingComments(pos uint32) {
	for _, c := range p.cs.LeadingAt(pos) {
		p.emitComment(c)
	}
}

func (p *Printer) emitTrailingComments(pos uint32) {
	for _, c := range p.cs.TrailingAt(pos) {
		p.emitComment(c)
	}
}

func (p *Printer) emitComment(c comments.Comment) {
	if p.emittedComments[c.Pos] {
		return
	}
	p.emittedComments[c.Pos] = true

	if c.Line {
		p.w.WriteRaw("//" + c.Text)
		p.w.WriteLine()
		return
	}
	p.w.WriteRaw("/*" + c.Text + "*/")
	if c.NewlineAfter {
		p.w.WriteLine()
	} else {
		p.w.WriteSpace()
	}
}
