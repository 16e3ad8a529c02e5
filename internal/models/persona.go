// ABOUTME: Persona configurations for the conversational layer
// ABOUTME: Narrative prompt text is opaque policy content, looked up by key and never branched on
package models

// Persona describes one trained stakeholder profile. The fields are
// configuration values consumed by prompt assembly; the core ranking logic
// never inspects them.
type Persona struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	CompanySize string   `json:"company_size"`
	Industry    string   `json:"industry"`
	Priorities  []string `json:"priorities"`
}

// personas holds the trained persona profiles keyed by persona key.
var personas = map[string]Persona{
	"zuri": {
		Key:         "zuri",
		Name:        "Zuri",
		Role:        "Multinational Corporate Sustainability Leader",
		CompanySize: "10,000+ employees",
		Industry:    "Tech",
		Priorities:  []string{"ESG compliance", "Investor relations", "Global scalability", "Strategic sustainability"},
	},
	"amina": {
		Key:         "amina",
		Name:        "Amina",
		Role:        "Cost-Conscious Business Owner",
		CompanySize: "50-200 employees",
		Industry:    "Manufacturing",
		Priorities:  []string{"Cost optimization", "Quick ROI", "Operational efficiency", "Resource management"},
	},
	"bjorn": {
		Key:         "bjorn",
		Name:        "Björn",
		Role:        "Head of Finance, Long-Time Vendor Customer",
		CompanySize: "500+ employees",
		Industry:    "Construction",
		Priorities:  []string{"Technology integration", "Vendor relationships", "Risk management", "Proven solutions"},
	},
	"arjun": {
		Key:         "arjun",
		Name:        "Arjun",
		Role:        "Sustainability Champion",
		CompanySize: "80-300 employees",
		Industry:    "Retail",
		Priorities:  []string{"Sustainability impact", "Brand positioning", "Stakeholder engagement", "Competitive advantage"},
	},
}

// generalPersona is the fallback profile for unknown persona keys.
var generalPersona = Persona{
	Key:         "general",
	Name:        "a sustainability stakeholder",
	Role:        "decision-maker",
	CompanySize: "an organization of unspecified size",
	Industry:    "a general industry setting",
	Priorities:  []string{"strategic decarbonization", "technology evaluation", "sustainability transformation"},
}

// LookupPersona returns the persona for key, falling back to a general
// profile for unknown keys. The second return reports whether the key was a
// trained persona.
func LookupPersona(key string) (Persona, bool) {
	if p, ok := personas[key]; ok {
		return p, true
	}
	return generalPersona, false
}

// KnownPersona reports whether key names one of the trained personas.
func KnownPersona(key string) bool {
	_, ok := personas[key]
	return ok
}
