// ABOUTME: Curated corpus of official glossary terms and tool manual sections
// ABOUTME: Chunks are embedded once at startup and searched semantically
package core

import "fmt"

// DocumentChunk is one searchable piece of official documentation.
type DocumentChunk struct {
	ID      string
	Content string
	Source  string
	Section string
	Kind    string
}

const glossarySource = "Official Glossary of Sustainability Terms and Abbreviations, Status: 24.06.2025"
const manualSource = "Decision Optimizer User Manual v1.2.2"

type glossaryEntry struct {
	key        string
	term       string
	definition string
	source     string
}

var glossaryEntries = []glossaryEntry{
	{
		key:  "dbo",
		term: "Digital Business Optimizer (DBO)",
		definition: `The Digital Business Optimizer (DBO) is your trusted companion in the journey toward a greener future. It offers an interactive platform to explore the technology investment options for decarbonizing your facility's energy consumption.

Key Features:
- Customized Decarbonization Strategy
- Data-Driven Insights
- Tailored Scenarios
- Competitive Edge
- Navigating Complexity`,
		source: glossarySource,
	},
	{
		key:        "sigreen",
		term:       "SiGREEN",
		definition: "SiGREEN is a tool to contribute to decarbonization through digitalization. Customers can manage the carbon footprint of products and track and improve product-related emissions based on reliable data.",
		source:     glossarySource,
	},
	{
		key:        "degree",
		term:       "DEGREE Framework",
		definition: "A framework for sustainability which constitutes a 360-degree approach for all stakeholders. For each of the six focus areas of the DEGREE framework (Decarbonization, Ethics, Governance, Resource efficiency, Equity, Employability), key performance indicators underpin the ambitions.",
		source:     glossarySource,
	},
	{
		key:        "xcelerator",
		term:       "Xcelerator Marketplace",
		definition: "An open digital business platform that includes a curated portfolio of IoT-enabled hardware, software and digital services from the vendor and certified third parties.",
		source:     "Official Platform Documentation",
	},
}

type manualSection struct {
	title   string
	content string
}

var manualSections = []manualSection{
	{
		title:   "What is the Decision Optimizer?",
		content: "The Digital Business Optimizer (DBO) is a web-based tool designed to support small and medium-sized enterprises (SMEs) in their decarbonization journey. It provides technology investment options to reduce carbon emissions while optimizing energy costs.",
	},
	{
		title: "Decision Optimizer Key Features",
		content: `- Interactive platform for exploring decarbonization options
- Customized scenarios based on facility data
- ROI calculations for sustainability investments
- Integrated financing options
- Support for facilities in the contiguous United States`,
	},
}

// DocumentCorpus returns the full searchable corpus: glossary terms first,
// then manual sections, in fixed order. Each chunk's content is the section
// title followed by its body, matching what gets embedded.
func DocumentCorpus() []DocumentChunk {
	chunks := make([]DocumentChunk, 0, len(glossaryEntries)+len(manualSections))

	for _, entry := range glossaryEntries {
		chunks = append(chunks, DocumentChunk{
			ID:      "glossary:" + entry.key,
			Content: entry.term + "\n\n" + entry.definition,
			Source:  entry.source,
			Section: entry.term,
			Kind:    "glossary",
		})
	}
	for idx, section := range manualSections {
		chunks = append(chunks, DocumentChunk{
			ID:      fmt.Sprintf("manual:%d", idx),
			Content: section.title + "\n\n" + section.content,
			Source:  manualSource,
			Section: section.title,
			Kind:    "manual",
		})
	}
	return chunks
}
