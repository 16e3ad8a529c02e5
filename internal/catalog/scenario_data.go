// ABOUTME: Static source list of decision-optimization scenarios
// ABOUTME: Versioned read-only input; entry order is the catalog insertion order
package catalog

import "github.com/hasansarfraz/sustainability-navigator/internal/models"

// scenarioSources is the static, versioned scenario list loaded at startup.
var scenarioSources = []models.ScenarioSource{
	{
		Title: "Energy Optimization",
		Description: "A mid-sized manufacturing facility wants to reduce energy costs and carbon " +
			"footprint across its production lines without disrupting output.",
		Recommendations: []string{
			"Install IoT sensors for real-time energy monitoring",
			"Deploy smart HVAC controls with occupancy-based automation",
			"Upgrade to high-efficiency LED lighting",
			"Implement predictive analytics for peak-load management",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 2.5,
			Metrics: []models.SavingsMetric{
				{Name: "energy_savings", Value: "20-30%"},
				{Name: "carbon_reduction", Value: "15-25%"},
			},
		},
	},
	{
		Title: "Smart Building Retrofitting",
		Description: "A municipal office building portfolio seeks a retrofit program to cut " +
			"operating costs and meet public-sector emission targets.",
		Recommendations: []string{
			"Retrofit building automation systems for centralized control",
			"Add smart metering and energy analytics dashboards",
			"Improve insulation and glazing in the oldest buildings",
			"Introduce demand-response automation for grid events",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 3.5,
			Metrics: []models.SavingsMetric{
				{Name: "energy_savings", Value: "25-40%"},
				{Name: "operational_cost_reduction", Value: "20-30%"},
			},
		},
	},
	{
		Title: "Remote Energy Monitoring for SMEs",
		Description: "A cluster of SMEs wants shared remote energy monitoring to identify waste " +
			"and benchmark consumption across small commercial sites.",
		Recommendations: []string{
			"Deploy cloud-connected smart meters at each site",
			"Set up centralized monitoring and alerting",
			"Run quarterly energy-waste reviews with staff training",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 1.5,
			Metrics: []models.SavingsMetric{
				{Name: "energy_savings", Value: "10-20%"},
			},
		},
	},
	{
		Title: "Fleet Electrification Planning",
		Description: "A regional logistics operator plans the phased electrification of its " +
			"delivery fleet and depot charging infrastructure.",
		Recommendations: []string{
			"Model route energy demand with telematics data analytics",
			"Install smart charging stations with load balancing",
			"Integrate renewable power purchase for depot charging",
			"Automate charge scheduling against tariff windows",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 4.5,
			Metrics: []models.SavingsMetric{
				{Name: "fuel_cost_savings", Value: "40-60%"},
				{Name: "carbon_reduction", Value: "45-70%"},
			},
		},
	},
	{
		Title: "Waste Stream Digitalization",
		Description: "An industrial recycler wants machine-vision sorting and digital tracking " +
			"to raise recovery rates in its waste processing plant.",
		Recommendations: []string{
			"Install AI-based machine vision sorting on key lines",
			"Add IoT sensors for throughput and contamination monitoring",
			"Create a digital twin of the sorting process for optimization",
			"Automate reporting of recovery and landfill-diversion rates",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 3.0,
			Metrics: []models.SavingsMetric{
				{Name: "waste_reduction", Value: "25-40%"},
				{Name: "recovery_rate_improvement", Value: "15-30%"},
			},
		},
	},
	{
		Title: "Water Conservation in Beverage Processing",
		Description: "A beverage processing plant needs to reduce water consumption and " +
			"wastewater treatment costs while keeping product quality stable.",
		Recommendations: []string{
			"Install water-flow monitoring across the processing stages",
			"Recover and treat rinse water for reuse in cleaning cycles",
			"Upgrade clean-in-place systems with automated dosing control",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 2.0,
			Metrics: []models.SavingsMetric{
				{Name: "water_savings", Value: "20-35%"},
				{Name: "energy_savings", Value: "5-10%"},
			},
		},
	},
	{
		Title: "Supply Chain Carbon Transparency",
		Description: "A retail group wants supplier-level carbon tracking across its supply " +
			"chain to support ESG reporting commitments.",
		Recommendations: []string{
			"Onboard suppliers to a shared carbon tracking platform",
			"Automate emissions data collection and ESG reporting",
			"Set supplier reduction targets with quarterly analytics reviews",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 5.0,
			Metrics: []models.SavingsMetric{
				{Name: "carbon_reduction", Value: "10-20%"},
				{Name: "reporting_time_savings", Value: "50-60%"},
			},
		},
	},
}
