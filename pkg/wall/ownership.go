package wall

// ownership is the immutable-after-setup mapping from object to owning
// firm. Every object starts owned by firm 0 until assigned.
type ownership struct {
	owners []Firm
	firms  int
}

func newOwnership(objects, firms int) *ownership {
	return &ownership{owners: make([]Firm, objects), firms: firms}
}

func (o *ownership) set(object Object, firm Firm) error {
	if object < 0 || int(object) >= len(o.owners) {
		return outOfRangef("object %d not in [0, %d)", object, len(o.owners))
	}
	if firm < 0 || int(firm) >= o.firms {
		return outOfRangef("firm %d not in [0, %d)", firm, o.firms)
	}
	o.owners[object] = firm
	return nil
}

func (o *ownership) owner(object Object) (Firm, error) {
	if object < 0 || int(object) >= len(o.owners) {
		return 0, outOfRangef("object %d not in [0, %d)", object, len(o.owners))
	}
	return o.owners[object], nil
}

func (o *ownership) ownedBy(firm Firm) []Object {
	objects := make([]Object, 0)
	for i, owner := range o.owners {
		if owner == firm {
			objects = append(objects, Object(i))
		}
	}
	return objects
}
