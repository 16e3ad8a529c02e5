// ABOUTME: Ordinal proficiency levels plus communication and compliance enums
// ABOUTME: Level ordering is load-bearing for eligibility filtering and scoring
package models

// ProficiencyLevel rates a user's capability in one dimension.
// Levels are ordered: beginner < intermediate < advanced < expert.
type ProficiencyLevel string

const (
	Beginner     ProficiencyLevel = "beginner"
	Intermediate ProficiencyLevel = "intermediate"
	Advanced     ProficiencyLevel = "advanced"
	Expert       ProficiencyLevel = "expert"
)

// proficiencyRank maps each level to its ordinal position.
var proficiencyRank = map[ProficiencyLevel]int{
	Beginner:     0,
	Intermediate: 1,
	Advanced:     2,
	Expert:       3,
}

// Valid reports whether the level is one of the four known levels.
func (p ProficiencyLevel) Valid() bool {
	_, ok := proficiencyRank[p]
	return ok
}

// Rank returns the ordinal position of the level (beginner=0 .. expert=3).
// Unknown levels rank below beginner.
func (p ProficiencyLevel) Rank() int {
	if r, ok := proficiencyRank[p]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether p meets or exceeds the required level.
func (p ProficiencyLevel) AtLeast(required ProficiencyLevel) bool {
	return p.Rank() >= required.Rank()
}

// CommunicationStyle is the user's preferred communication approach.
type CommunicationStyle string

const (
	StyleTechnical          CommunicationStyle = "technical"
	StyleBusinessFocused    CommunicationStyle = "business_focused"
	StyleSimpleExplanations CommunicationStyle = "simple_explanations"
	StyleComprehensive      CommunicationStyle = "comprehensive"
)

// ComplianceImportance is how much regulatory compliance matters to the user.
type ComplianceImportance string

const (
	ComplianceLow      ComplianceImportance = "low"
	ComplianceMedium   ComplianceImportance = "medium"
	ComplianceHigh     ComplianceImportance = "high"
	ComplianceCritical ComplianceImportance = "critical"
)
