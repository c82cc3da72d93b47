package ast

import "golang.org/x/text/cases"

// Footnote looks up the definition of the footnote called name. An exact
// match wins; otherwise names are compared after Unicode case folding, so
// [^Note] finds a definition written as [^note]. When several definitions
// fold to the same name, the lexically smallest one is returned.
func (p *Program) Footnote(name string) ([]Node, bool) {
	if p == nil {
		return nil, false
	}
	if children, ok := p.Footnotes[name]; ok {
		return children, true
	}
	fold := cases.Fold()
	want := fold.String(name)
	match, found := "", false
	for key := range p.Footnotes {
		if fold.String(key) != want {
			continue
		}
		if !found || key < match {
			match, found = key, true
		}
	}
	if !found {
		return nil, false
	}
	return p.Footnotes[match], true
}
