package model

// Organisation is an accessor organisation that can engage with
// innovations through its units.
type Organisation struct {
	ID      string
	Name    string
	Acronym string
	Units   []OrganisationUnit
}

// OrganisationUnit is the scope a support record belongs to. Users hold
// their qualifying-accessor role at the organisation level but act through
// a unit.
type OrganisationUnit struct {
	ID      string
	Name    string
	Acronym string
}

// Unit returns the unit with the given ID, or nil when the organisation
// has no such unit.
func (o *Organisation) Unit(unitID string) *OrganisationUnit {
	for i := range o.Units {
		if o.Units[i].ID == unitID {
			return &o.Units[i]
		}
	}
	return nil
}
