package wall

import "sort"

// conflictGraph is the symmetric competitor relation over firms. A firm
// never conflicts with itself implicitly, though declaring a self-conflict
// is not rejected.
type conflictGraph struct {
	classes []map[Firm]struct{}
}

func newConflictGraph(firms int) *conflictGraph {
	classes := make([]map[Firm]struct{}, firms)
	for i := range classes {
		classes[i] = make(map[Firm]struct{})
	}
	return &conflictGraph{classes: classes}
}

func (g *conflictGraph) add(a, b Firm) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	g.classes[a][b] = struct{}{}
	g.classes[b][a] = struct{}{}
	return nil
}

// contains reports whether member is in firm's conflict class. The policy
// engine also calls this with a converted subject index as member; the
// membership test itself is index-space agnostic.
func (g *conflictGraph) contains(firm, member Firm) bool {
	_, ok := g.classes[firm][member]
	return ok
}

func (g *conflictGraph) competitors(firm Firm) ([]Firm, error) {
	if err := g.check(firm); err != nil {
		return nil, err
	}
	firms := make([]Firm, 0, len(g.classes[firm]))
	for f := range g.classes[firm] {
		firms = append(firms, f)
	}
	sort.Slice(firms, func(i, j int) bool { return firms[i] < firms[j] })
	return firms, nil
}

func (g *conflictGraph) check(firm Firm) error {
	if firm < 0 || int(firm) >= len(g.classes) {
		return outOfRangef("firm %d not in [0, %d)", firm, len(g.classes))
	}
	return nil
}
