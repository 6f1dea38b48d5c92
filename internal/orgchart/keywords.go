package orgchart

import "strings"

// Tier identifies where a staff record lands in the chart.
type Tier int

const (
	TierUnclassified Tier = iota
	TierProtector
	TierAdvisor
	TierCoreExecutive
	TierPillar
	TierDivision
)

// Slot identifies a position inside a division.
type Slot int

const (
	SlotMember Slot = iota
	SlotDeputy
	SlotCoordinator
)

type tierRule struct {
	tier    Tier
	matches func(lowerRole string) bool
}

// tierRules is evaluated top to bottom and the first match wins. The exact
// core executive check sits above the pillar rule so "Wakil Ketua Umum" is
// never read as a vice chair, and the pillar rule sits above the generic
// "bidang" rule.
var tierRules = []tierRule{
	{TierProtector, contains("pelindung")},
	{TierAdvisor, contains("penasehat")},
	{TierCoreExecutive, isCoreExecutiveTitle},
	{TierPillar, contains("wakil ketua bidang")},
	{TierDivision, contains("bidang")},
}

type slotRule struct {
	substring string
	slot      Slot
}

// slotRules must keep "wakil" ahead of the coordinator keywords:
// "Wakil Koordinator" contains both.
var slotRules = []slotRule{
	{"wakil", SlotDeputy},
	{"koord", SlotCoordinator},
	{"koordinator", SlotCoordinator},
	{"ketua bidang", SlotCoordinator},
}

// coreExecutiveTitles is a closed set matched against the whole trimmed role.
var coreExecutiveTitles = map[string]struct{}{
	"ketua umum":       {},
	"wakil ketua umum": {},
	"sekretaris umum":  {},
	"sekretaris":       {},
	"bendahara":        {},
	"wakil bendahara":  {},
}

// divisionTitlePrefixes are stripped from the front of a role, when followed
// by "Bidang", to get the division name. The "wakil koord..." forms precede
// "wakil" so the longer title is consumed whole.
var divisionTitlePrefixes = []string{
	"wakil koordinator",
	"wakil koord.",
	"koordinator",
	"koord.",
	"anggota",
	"wakil",
	"ketua",
	"staf",
}

const divisionKeyword = "bidang"

func contains(substring string) func(string) bool {
	return func(lowerRole string) bool {
		return strings.Contains(lowerRole, substring)
	}
}

func isCoreExecutiveTitle(lowerRole string) bool {
	_, ok := coreExecutiveTitles[strings.TrimSpace(lowerRole)]
	return ok
}

// ClassifyTier returns the tier for a role label.
func ClassifyTier(role string) Tier {
	lower := strings.ToLower(role)
	for _, rule := range tierRules {
		if rule.matches(lower) {
			return rule.tier
		}
	}
	return TierUnclassified
}

// ClassifySlot returns the division slot for a role label.
func ClassifySlot(role string) Slot {
	lower := strings.ToLower(role)
	for _, rule := range slotRules {
		if strings.Contains(lower, rule.substring) {
			return rule.slot
		}
	}
	return SlotMember
}

// DivisionName strips a leading title such as "Koord. Bidang" or a bare
// "Bidang" from role and returns the trimmed remainder. Roles without a
// recognized prefix come back trimmed but otherwise unchanged.
func DivisionName(role string) string {
	name := strings.TrimSpace(role)

	for _, prefix := range divisionTitlePrefixes {
		if !hasPrefixFold(name, prefix) {
			continue
		}
		rest := strings.TrimLeft(name[len(prefix):], " \t")
		if hasPrefixFold(rest, divisionKeyword) {
			return strings.TrimSpace(rest[len(divisionKeyword):])
		}
	}
	if hasPrefixFold(name, divisionKeyword) {
		return strings.TrimSpace(name[len(divisionKeyword):])
	}
	return name
}

// hasPrefixFold reports whether s begins with the ASCII prefix, ignoring case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
