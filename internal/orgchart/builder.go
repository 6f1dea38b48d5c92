// Package orgchart turns a flat, ordered staff roster into the nested
// organization chart shown on the mosque profile page.
//
// Role labels are free text ("Koord. Bidang Dana", "Wakil Ketua Bidang
// Ekonomi") and the roster order is the grouping signal: a division's people
// are the records that follow it until the next division or pillar header.
package orgchart

import "strings"

// StaffRecord is one roster row.
type StaffRecord struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Division is a functional unit ("Bidang") inside a pillar.
type Division struct {
	Name        string        `json:"name"`
	Coordinator *StaffRecord  `json:"coordinator"`
	Deputy      *StaffRecord  `json:"deputy"`
	Members     []StaffRecord `json:"members"`
}

// Pillar is a group of divisions led by a vice chair.
type Pillar struct {
	ViceChair StaffRecord `json:"viceChair"`
	Divisions []Division  `json:"divisions"`
}

// OrgChart is the rendered hierarchy. Every list is non-nil.
type OrgChart struct {
	Protectors     []StaffRecord `json:"protectors"`
	Advisors       []StaffRecord `json:"advisors"`
	CoreExecutives []StaffRecord `json:"coreExecutives"`
	Pillars        []Pillar      `json:"pillars"`
	Unclassified   []StaffRecord `json:"unclassified"`
}

// Count returns the number of records placed anywhere in the chart.
func (o OrgChart) Count() int {
	n := len(o.Protectors) + len(o.Advisors) + len(o.CoreExecutives) + len(o.Unclassified)
	for _, p := range o.Pillars {
		n++
		for _, d := range p.Divisions {
			n += len(d.Members)
			if d.Coordinator != nil {
				n++
			}
			if d.Deputy != nil {
				n++
			}
		}
	}
	return n
}

// cursor is the fold state carried across records. Indices point into the
// chart being built; -1 means none.
type cursor struct {
	pillar   int
	division int
}

// Build classifies records into an OrgChart. A non-blank filter keeps only
// records whose name or role contains it verbatim, case-insensitively; the
// rest are skipped entirely. Build never fails and never mutates records.
func Build(records []StaffRecord, filter string) OrgChart {
	chart := OrgChart{
		Protectors:     []StaffRecord{},
		Advisors:       []StaffRecord{},
		CoreExecutives: []StaffRecord{},
		Pillars:        []Pillar{},
		Unclassified:   []StaffRecord{},
	}
	var needle string
	if strings.TrimSpace(filter) != "" {
		needle = strings.ToLower(filter)
	}
	cur := cursor{pillar: -1, division: -1}

	for _, rec := range records {
		if needle != "" && !matchesFilter(rec, needle) {
			continue
		}
		cur = chart.place(rec, cur)
	}
	return chart
}

func matchesFilter(rec StaffRecord, needle string) bool {
	return strings.Contains(strings.ToLower(rec.Name), needle) ||
		strings.Contains(strings.ToLower(rec.Role), needle)
}

func (o *OrgChart) place(rec StaffRecord, cur cursor) cursor {
	switch ClassifyTier(rec.Role) {
	case TierProtector:
		o.Protectors = append(o.Protectors, rec)
	case TierAdvisor:
		o.Advisors = append(o.Advisors, rec)
	case TierCoreExecutive:
		o.CoreExecutives = append(o.CoreExecutives, rec)
	case TierPillar:
		o.Pillars = append(o.Pillars, Pillar{ViceChair: rec, Divisions: []Division{}})
		return cursor{pillar: len(o.Pillars) - 1, division: -1}
	case TierDivision:
		if cur.pillar < 0 {
			o.Unclassified = append(o.Unclassified, rec)
			return cur
		}
		return o.placeInDivision(rec, cur)
	default:
		o.Unclassified = append(o.Unclassified, rec)
	}
	return cur
}

func (o *OrgChart) placeInDivision(rec StaffRecord, cur cursor) cursor {
	pillar := &o.Pillars[cur.pillar]
	name := DivisionName(rec.Role)

	if cur.division < 0 || pillar.Divisions[cur.division].Name != name {
		pillar.Divisions = append(pillar.Divisions, Division{Name: name, Members: []StaffRecord{}})
		cur.division = len(pillar.Divisions) - 1
	}
	div := &pillar.Divisions[cur.division]

	switch ClassifySlot(rec.Role) {
	case SlotDeputy:
		o.displace(div.Deputy)
		div.Deputy = &rec
	case SlotCoordinator:
		o.displace(div.Coordinator)
		div.Coordinator = &rec
	default:
		div.Members = append(div.Members, rec)
	}
	return cur
}

// displace keeps an overwritten slot holder visible instead of dropping it.
func (o *OrgChart) displace(prev *StaffRecord) {
	if prev != nil {
		o.Unclassified = append(o.Unclassified, *prev)
	}
}
