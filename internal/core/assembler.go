// ABOUTME: Assembles scored products into full recommendations with guidance
// ABOUTME: Every lookup table has a default so assembly is total over the catalog
package core

import (
	"sort"
	"strings"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// relevanceDivisor normalizes the additive score to a 0-1 relevance figure.
const relevanceDivisor = 10.0

// investmentBands holds headline investment ranges per product and company
// size bucket. Missing entries fall back to "Contact for pricing".
var investmentBands = map[string]map[string]string{
	"desigo_cc":      {"small": "$15K-50K", "medium": "$50K-150K", "large": "$150K-500K"},
	"mindsphere":     {"small": "$25K-75K", "medium": "$75K-200K", "large": "$200K-600K"},
	"sigreen":        {"small": "$5K-15K", "medium": "$15K-40K", "large": "$40K-100K"},
	"sicam_gridedge": {"small": "$30K-80K", "medium": "$80K-250K", "large": "$250K-750K"},
	"building_x":     {"small": "$10K-30K", "medium": "$30K-80K", "large": "$80K-200K"},
	"simatic_pcs7":   {"small": "$100K-300K", "medium": "$300K-800K", "large": "$800K-2M"},
	catalog.FinancingProductID: {
		"small": "Financing available", "medium": "Financing available", "large": "Financing available",
	},
}

var roiTimelines = map[string]string{
	"desigo_cc":                "12-24 months (15-30% energy savings)",
	"mindsphere":               "18-36 months (20-40% productivity improvement)",
	"sigreen":                  "6-12 months (60% reporting time savings)",
	"sicam_gridedge":           "24-48 months (20-40% energy cost savings)",
	"building_x":               "12-18 months (20-40% energy savings)",
	"simatic_pcs7":             "24-60 months (15-30% efficiency gains)",
	catalog.FinancingProductID: "Immediate cash flow benefits",
}

var sustainabilityGuidance = map[models.ProficiencyLevel]string{
	models.Beginner:     "Comprehensive training and guided implementation recommended",
	models.Intermediate: "Moderate support with focused training on key features",
	models.Advanced:     "Technical consultation and advanced feature training",
	models.Expert:       "Strategic partnership for optimization and innovation",
}

var technologicalGuidance = map[models.ProficiencyLevel]string{
	models.Beginner:     "Full implementation services with extensive user training",
	models.Intermediate: "Implementation support with technical training",
	models.Advanced:     "Technical consulting and optimization guidance",
	models.Expert:       "Collaborative development and advanced customization",
}

var communicationAdaptations = map[models.CommunicationStyle]string{
	models.StyleTechnical:          "Focus on technical specifications, performance metrics, and integration details",
	models.StyleBusinessFocused:    "Emphasize ROI, business benefits, and strategic value proposition",
	models.StyleSimpleExplanations: "Use clear, non-technical language with practical examples",
	models.StyleComprehensive:      "Provide detailed technical and business information with full context",
}

var complianceApproaches = map[models.ComplianceImportance]string{
	models.ComplianceLow:      "Basic compliance features available",
	models.ComplianceMedium:   "Standard compliance reporting and tracking included",
	models.ComplianceHigh:     "Advanced compliance features with regulatory support",
	models.ComplianceCritical: "Comprehensive compliance management with dedicated regulatory consulting",
}

var ecosystemBaseBenefits = []string{
	"Seamless integration with the wider solution portfolio",
	"Access to the vendor's global support network",
	"Future-proof technology with continuous updates",
}

var ecosystemProductBenefits = map[string][]string{
	"desigo_cc":                {"Integration with the building solutions portfolio", "Standardized building management across facilities"},
	"mindsphere":               {"Connection to the industrial IoT ecosystem", "Access to the industrial app marketplace"},
	"sigreen":                  {"Integration with the sustainability portfolio", "Comprehensive ESG reporting ecosystem"},
	"sicam_gridedge":           {"Grid-scale integration capabilities", "Renewable energy ecosystem connectivity"},
	"building_x":               {"Cloud-native scalability", "Digital building services ecosystem"},
	"simatic_pcs7":             {"Industrial automation ecosystem", "Process optimization network"},
	catalog.FinancingProductID: {"Integrated financing for the full technology stack", "Portfolio financing options"},
}

var baseFinancingOptions = []string{
	"Vendor financial services leasing",
	"Equipment financing",
	"Technology rental",
}

var extendedFinancingOptions = []string{
	"Performance-based financing",
	"Green financing options",
	"Flexible payment terms",
	"End-to-end solution financing",
}

// Assembler turns scored products into complete recommendations tailored
// to a user profile.
type Assembler struct {
	products *catalog.ProductCatalog
}

// NewAssembler creates an assembler over the given product catalog.
func NewAssembler(products *catalog.ProductCatalog) *Assembler {
	return &Assembler{products: products}
}

// Assemble produces one full recommendation per scored product, preserving
// the scored order. Unknown product ids are skipped.
func (a *Assembler) Assemble(scored []models.ScoredProduct, profile *models.UserProfile) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, len(scored))

	for _, sp := range scored {
		product, err := a.products.Get(sp.ProductID)
		if err != nil {
			continue
		}

		relevance := sp.FinalScore / relevanceDivisor
		if relevance > 1.0 {
			relevance = 1.0
		}

		recommendations = append(recommendations, models.Recommendation{
			ProductID:                product.ID,
			ProductName:              product.Name,
			ProductCategory:          product.Category,
			MarketplaceURL:           product.MarketplaceURL,
			RelevanceScore:           relevance,
			ImplementationComplexity: product.ImplementationComplexity,
			EstimatedTimeline:        product.TypicalTimeline,
			EstimatedInvestment:      estimateInvestment(product.ID, profile),
			ExpectedROITimeline:      roiTimeline(product.ID),
			FinancingOptions:         financingOptions(product),
			ProficiencyMatch:         proficiencyGuidance(profile),
			ImplementationSupport:    implementationSupport(product, profile),
			EcosystemBenefits:        ecosystemBenefits(product.ID),
		})
	}
	return recommendations
}

// estimateInvestment buckets the company size and looks up the headline
// range for that product. Everything else says "Contact for pricing".
func estimateInvestment(productID string, profile *models.UserProfile) string {
	size := profile.CompanySize
	if size == "" {
		size = "medium"
	}
	lowered := strings.ToLower(size)

	bucket := "medium"
	switch {
	case strings.Contains(lowered, "small") || strings.Contains(size, "10-50"):
		bucket = "small"
	case strings.Contains(lowered, "large") || strings.Contains(size, "500+"):
		bucket = "large"
	}

	if bands, ok := investmentBands[productID]; ok {
		if estimate, ok := bands[bucket]; ok {
			return estimate
		}
	}
	return "Contact for pricing"
}

func roiTimeline(productID string) string {
	if roi, ok := roiTimelines[productID]; ok {
		return roi
	}
	return "18-36 months typical"
}

func financingOptions(product *models.ProductEntry) []string {
	options := make([]string, 0, len(baseFinancingOptions)+len(extendedFinancingOptions))
	options = append(options, baseFinancingOptions...)
	if product.FinancingAvailable {
		options = append(options, extendedFinancingOptions...)
	}
	return options
}

func proficiencyGuidance(profile *models.UserProfile) models.ProficiencyGuidance {
	communication, ok := communicationAdaptations[profile.CommunicationStyle]
	if !ok {
		communication = communicationAdaptations[models.StyleComprehensive]
	}
	compliance, ok := complianceApproaches[profile.ComplianceImportance]
	if !ok {
		compliance = complianceApproaches[models.ComplianceMedium]
	}
	return models.ProficiencyGuidance{
		SustainabilityApproach: sustainabilityGuidance[profile.SustainabilityProficiency],
		TechnologicalApproach:  technologicalGuidance[profile.TechnologicalProficiency],
		CommunicationStyle:     communication,
		ComplianceFocus:        compliance,
	}
}

// implementationSupport extends the product's support services with
// profile-driven additions, deduplicated and sorted for stable output.
func implementationSupport(product *models.ProductEntry, profile *models.UserProfile) []string {
	support := make([]string, 0, len(product.VendorSupport)+6)
	support = append(support, product.VendorSupport...)

	if profile.SustainabilityProficiency == models.Beginner {
		support = append(support, "Sustainability strategy consulting", "Change management support")
	}
	if profile.TechnologicalProficiency == models.Beginner {
		support = append(support, "Comprehensive user training", "Technical helpdesk support")
	}
	if profile.ComplianceImportance == models.ComplianceHigh || profile.ComplianceImportance == models.ComplianceCritical {
		support = append(support, "Regulatory compliance consulting", "Audit support services")
	}

	seen := make(map[string]bool, len(support))
	deduped := support[:0]
	for _, item := range support {
		if seen[item] {
			continue
		}
		seen[item] = true
		deduped = append(deduped, item)
	}
	sort.Strings(deduped)
	return deduped
}

func ecosystemBenefits(productID string) []string {
	benefits := make([]string, 0, len(ecosystemBaseBenefits)+2)
	benefits = append(benefits, ecosystemBaseBenefits...)
	benefits = append(benefits, ecosystemProductBenefits[productID]...)
	return benefits
}
