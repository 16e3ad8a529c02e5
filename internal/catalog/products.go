// ABOUTME: Vendor product catalog plus the proficiency matrix and capability map
// ABOUTME: Static data loaded once; eligibility and scoring consume these tables
package catalog

import "github.com/hasansarfraz/sustainability-navigator/internal/models"

// FinancingProductID is the financing offering that stays universally
// relevant regardless of proficiency and capability match.
const FinancingProductID = "financial_services"

// productEntries is the static product catalog in insertion order.
var productEntries = []models.ProductEntry{
	{
		ID:             "desigo_cc",
		Name:           "Desigo CC",
		Category:       "Building Management Systems",
		Subcategory:    "Building Automation",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/desigo-cc.html",
		Description:    "Integrated building management platform for comprehensive facility optimization",
		KeyCapabilities: []string{
			"HVAC system optimization",
			"Energy consumption monitoring",
			"Occupancy-based controls",
			"Predictive maintenance",
			"Integration with renewable energy systems",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "energy_savings", Value: "15-30%"},
			{Name: "carbon_reduction", Value: "20-35%"},
			{Name: "operational_efficiency", Value: "25% improvement"},
		},
		ImplementationComplexity: "Medium",
		TypicalTimeline:          "3-6 months",
		TargetCompanySize:        []string{"Medium", "Large", "Enterprise"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Intermediate,
			Technological:  models.Intermediate,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Implementation services", "Training", "24/7 support"},
	},
	{
		ID:             "mindsphere",
		Name:           "MindSphere",
		Category:       "Industrial IoT Platform",
		Subcategory:    "Digital Manufacturing",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/mindsphere.html",
		Description:    "Cloud-based IoT operating system for industrial digital transformation",
		KeyCapabilities: []string{
			"Asset performance monitoring",
			"Predictive analytics",
			"Digital twin integration",
			"Machine learning algorithms",
			"Energy optimization algorithms",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "energy_savings", Value: "10-25%"},
			{Name: "waste_reduction", Value: "15-20%"},
			{Name: "productivity_improvement", Value: "20-40%"},
		},
		ImplementationComplexity: "High",
		TypicalTimeline:          "6-12 months",
		TargetCompanySize:        []string{"Medium", "Large", "Enterprise"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Intermediate,
			Technological:  models.Advanced,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Digital transformation consulting", "Technical implementation", "Ongoing optimization"},
	},
	{
		ID:             "sigreen",
		Name:           "SiGREEN",
		Category:       "Sustainability Management",
		Subcategory:    "Carbon & ESG Analytics",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/sigreen.html",
		Description:    "Comprehensive carbon footprint tracking and ESG reporting platform",
		KeyCapabilities: []string{
			"Carbon footprint calculation",
			"ESG reporting automation",
			"Regulatory compliance tracking",
			"Sustainability KPI dashboards",
			"Supply chain emissions tracking",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "reporting_accuracy", Value: "95%+ compliance"},
			{Name: "time_savings", Value: "60% reduction in reporting time"},
			{Name: "transparency_improvement", Value: "Complete supply chain visibility"},
		},
		ImplementationComplexity: "Low to Medium",
		TypicalTimeline:          "2-4 months",
		TargetCompanySize:        []string{"Small", "Medium", "Large", "Enterprise"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Beginner,
			Technological:  models.Beginner,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Implementation guidance", "Regulatory compliance support", "Training programs"},
	},
	{
		ID:             "sicam_gridedge",
		Name:           "SICAM GridEdge",
		Category:       "Energy Management",
		Subcategory:    "Smart Grid & Renewable Integration",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/sicam-gridedge.html",
		Description:    "Advanced grid edge device for renewable energy integration and optimization",
		KeyCapabilities: []string{
			"Renewable energy integration",
			"Energy storage management",
			"Grid stability optimization",
			"Demand response automation",
			"Real-time energy analytics",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "renewable_integration", Value: "Up to 100% renewable energy"},
			{Name: "grid_efficiency", Value: "15-25% improvement"},
			{Name: "energy_cost_savings", Value: "20-40%"},
		},
		ImplementationComplexity: "High",
		TypicalTimeline:          "4-8 months",
		TargetCompanySize:        []string{"Medium", "Large", "Enterprise"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Intermediate,
			Technological:  models.Advanced,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Grid integration consulting", "Technical implementation", "Maintenance services"},
	},
	{
		ID:             "simatic_pcs7",
		Name:           "SIMATIC PCS 7",
		Category:       "Process Control Systems",
		Subcategory:    "Industrial Automation",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/simatic-pcs7.html",
		Description:    "Distributed control system for optimized industrial processes and sustainability",
		KeyCapabilities: []string{
			"Process optimization",
			"Energy efficiency controls",
			"Waste minimization",
			"Quality improvement",
			"Safety system integration",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "energy_efficiency", Value: "15-30%"},
			{Name: "waste_reduction", Value: "20-35%"},
			{Name: "process_optimization", Value: "25% improvement"},
		},
		ImplementationComplexity: "High",
		TypicalTimeline:          "8-18 months",
		TargetCompanySize:        []string{"Large", "Enterprise"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Advanced,
			Technological:  models.Expert,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Process engineering", "Implementation services", "Lifecycle support"},
	},
	{
		ID:             "building_x",
		Name:           "Building X",
		Category:       "Digital Building Solutions",
		Subcategory:    "Smart Building Platform",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/building-x.html",
		Description:    "Cloud-based digital building platform for performance optimization",
		KeyCapabilities: []string{
			"Building performance analytics",
			"Energy optimization",
			"Space utilization optimization",
			"Predictive maintenance",
			"Occupant experience enhancement",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "energy_savings", Value: "20-40%"},
			{Name: "operational_efficiency", Value: "30% improvement"},
			{Name: "carbon_footprint_reduction", Value: "25-45%"},
		},
		ImplementationComplexity: "Medium",
		TypicalTimeline:          "2-6 months",
		TargetCompanySize:        []string{"Small", "Medium", "Large"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Beginner,
			Technological:  models.Intermediate,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Cloud implementation", "Analytics setup", "Optimization consulting"},
	},
	{
		ID:             FinancingProductID,
		Name:           "Vendor Financial Services",
		Category:       "Financing Solutions",
		Subcategory:    "Technology Financing",
		MarketplaceURL: "https://xcelerator.siemens.com/global/en/offerings/financial-services.html",
		Description:    "Comprehensive financing solutions for sustainability technology investments",
		KeyCapabilities: []string{
			"Equipment financing",
			"Technology leasing",
			"Performance-based financing",
			"Green financing options",
			"Flexible payment structures",
		},
		SustainabilityImpact: []models.SustainabilityImpact{
			{Name: "investment_facilitation", Value: "Up to 100% financing"},
			{Name: "cash_flow_optimization", Value: "Preserve working capital"},
			{Name: "accelerated_implementation", Value: "Faster sustainability adoption"},
		},
		ImplementationComplexity: "Low",
		TypicalTimeline:          "2-8 weeks",
		TargetCompanySize:        []string{"Small", "Medium", "Large", "Enterprise"},
		Proficiency: models.ProficiencyRequirements{
			Sustainability: models.Beginner,
			Technological:  models.Beginner,
		},
		FinancingAvailable: true,
		VendorSupport:      []string{"Financing consultation", "Custom payment plans", "Risk assessment"},
	},
}

// sustainabilityRecommendations maps each sustainability proficiency level
// to the product set recommended for it. Sets are cumulative: each level
// includes everything the levels below it unlock, so raising proficiency
// can only widen the eligible set.
var sustainabilityRecommendations = map[models.ProficiencyLevel][]string{
	models.Beginner: {"sigreen", "building_x", FinancingProductID},
	models.Intermediate: {
		"sigreen", "building_x", FinancingProductID,
		"desigo_cc", "mindsphere", "sicam_gridedge",
	},
	models.Advanced: {
		"sigreen", "building_x", FinancingProductID,
		"desigo_cc", "mindsphere", "sicam_gridedge",
		"simatic_pcs7",
	},
	models.Expert: {
		"sigreen", "building_x", FinancingProductID,
		"desigo_cc", "mindsphere", "sicam_gridedge",
		"simatic_pcs7", "custom_solutions",
	},
}

// complexityBands maps each technological proficiency level to the
// implementation complexities it unlocks. Bands are cumulative; higher
// proficiency only adds complexities. "Low" complexity products are
// additionally always allowed at every level.
var complexityBands = map[models.ProficiencyLevel][]string{
	models.Beginner:     {"Low", "Low to Medium"},
	models.Intermediate: {"Low", "Low to Medium", "Medium"},
	models.Advanced:     {"Low", "Low to Medium", "Medium", "High"},
	models.Expert:       {"Low", "Low to Medium", "Medium", "High", "Custom"},
}

// capabilityProducts maps each requirement category to the products known
// to serve it. Consumed by the multi-factor scorer.
var capabilityProducts = map[string][]string{
	"energy_management":        {"desigo_cc", "sicam_gridedge", "building_x", "simatic_pcs7"},
	"resource_management":      {"simatic_pcs7", "building_x", "mindsphere"},
	"building_optimization":    {"desigo_cc", "building_x"},
	"waste_management":         {"simatic_pcs7", "mindsphere"},
	"supply_chain":             {"mindsphere", "sigreen"},
	"industrial_processes":     {"simatic_pcs7", "mindsphere"},
	"iot_monitoring":           {"mindsphere", "sicam_gridedge", "desigo_cc"},
	"data_analytics":           {"mindsphere", "building_x", "sigreen"},
	"automation_control":       {"simatic_pcs7", "desigo_cc", "sicam_gridedge"},
	"sustainability_reporting": {"sigreen", "building_x"},
	"energy_efficiency":        {"desigo_cc", "building_x", "sicam_gridedge"},
	"carbon_reduction":         {"sigreen", "building_x", "desigo_cc"},
	"water_conservation":       {"simatic_pcs7", "building_x"},
	"waste_reduction":          {"simatic_pcs7", "mindsphere"},
}

// complianceProducts is the fixed set of compliance-relevant offerings.
var complianceProducts = map[string]bool{
	"sigreen":    true,
	"building_x": true,
	"desigo_cc":  true,
}

// ProductCatalog holds the vendor offerings in insertion order. Constructed
// once at startup; safe for concurrent reads without locking.
type ProductCatalog struct {
	entries []*models.ProductEntry
	byID    map[string]*models.ProductEntry
	order   map[string]int
}

// NewProductCatalog builds the catalog from the static product list.
func NewProductCatalog() *ProductCatalog {
	return newProductCatalog(productEntries)
}

func newProductCatalog(entries []models.ProductEntry) *ProductCatalog {
	c := &ProductCatalog{
		byID:  make(map[string]*models.ProductEntry, len(entries)),
		order: make(map[string]int, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		c.entries = append(c.entries, entry)
		c.byID[entry.ID] = entry
		c.order[entry.ID] = i
	}
	return c
}

// Len returns the number of products.
func (c *ProductCatalog) Len() int { return len(c.entries) }

// All returns the products in insertion order. Callers must not mutate the
// returned entries.
func (c *ProductCatalog) All() []*models.ProductEntry { return c.entries }

// Get looks up a product by id.
func (c *ProductCatalog) Get(id string) (*models.ProductEntry, error) {
	entry, ok := c.byID[id]
	if !ok {
		return nil, &UnknownEntityError{Kind: "product", ID: id}
	}
	return entry, nil
}

// Order returns the catalog insertion index for a product id, used for
// stable tie-breaking. Unknown ids sort last.
func (c *ProductCatalog) Order(id string) int {
	if i, ok := c.order[id]; ok {
		return i
	}
	return len(c.entries)
}

// RecommendedFor returns the product ids recommended for a sustainability
// proficiency level.
func (c *ProductCatalog) RecommendedFor(level models.ProficiencyLevel) []string {
	return sustainabilityRecommendations[level]
}

// ComplexityBand returns the implementation complexities unlocked by a
// technological proficiency level.
func (c *ProductCatalog) ComplexityBand(level models.ProficiencyLevel) []string {
	return complexityBands[level]
}

// ServesCapability reports whether a product is known to serve a
// requirement category.
func (c *ProductCatalog) ServesCapability(productID, capability string) bool {
	for _, id := range capabilityProducts[capability] {
		if id == productID {
			return true
		}
	}
	return false
}

// ComplianceRelevant reports whether the product is in the fixed
// compliance-relevant set.
func (c *ProductCatalog) ComplianceRelevant(productID string) bool {
	return complianceProducts[productID]
}
