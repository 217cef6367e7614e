package ingest

// SectionTable carries the vendor-specific lookup data that drives the
// body-to-MDX transform. Heading promotion matches whole trimmed lines,
// caption phrases match as substrings. Injected rather than hardcoded so
// a new vendor export only needs a new table.
type SectionTable struct {
	// MainSections are promoted to ## headings and also close an open
	// summary blockquote.
	MainSections []string
	// Subsections are promoted to ### headings.
	Subsections []string
	// CaptionPhrases are inline image captions replaced by a placeholder
	// image reference and stripped from the surrounding line.
	CaptionPhrases []string
	// CaptionWithCredit is a standalone caption line expected to be
	// followed by a photographer attribution on the next line.
	CaptionWithCredit string
	// DuplicateTitlePhrase drops the first body line when it repeats the
	// article title.
	DuplicateTitlePhrase string
	// PlaceholderImageURL is emitted for every caption image.
	PlaceholderImageURL string
}

func (t SectionTable) isMainSection(line string) bool {
	for _, s := range t.MainSections {
		if line == s {
			return true
		}
	}
	return false
}

func (t SectionTable) isSubsection(line string) bool {
	for _, s := range t.Subsections {
		if line == s {
			return true
		}
	}
	return false
}

// DefaultSectionTable returns the lookup table for the sourcing-agent
// article series exported by the vendor.
func DefaultSectionTable() SectionTable {
	return SectionTable{
		MainSections: []string{
			"What is Alibaba?",
			"What is a Sourcing Agent?",
			"The Advantages of Using a Sourcing Agent",
			"The Drawbacks of Relying Solely on Alibaba",
			"China Sourcing Fees: Sourcing Agent vs. Alibaba",
			"Making the Right Choice for Your Business",
			"Conclusion",
		},
		Subsections: []string{
			"The Scale of Alibaba",
			"Alibaba's Role in Global Trade",
			"Search and Verification on Alibaba",
			"The Role of Sourcing Agents",
			"Expertise and Network",
			"Risk Mitigation",
			"Personalized Service",
			"Tailored Supplier Selection",
			"Direct Communication",
			"Ongoing Relationship Building",
			"Expertise and Local Knowledge",
			"Navigating Cultural Nuances",
			"Market Insights",
			"Compliance and Regulations",
			"Quality Control",
			"Pre-Production Inspections",
			"In-Process Quality Checks",
			"Final Product Inspections",
			"Time and Cost Efficiency",
			"Streamlined Supplier Research",
			"Negotiation and Pricing",
			"Logistics and Coordination",
			"Language Barriers",
			"Misinterpretation of Specifications",
			"Negotiation Challenges",
			"Cultural Differences",
			"Scams and Fraud",
			"Identifying Legitimate Suppliers",
			"Payment Security",
			"Due Diligence",
			"Lack of Customization",
			"Custom Product Development",
			"Brand Alignment",
			"Prototype and Sampling",
			"Understanding the Costs",
			"Comprehensive Cost Analysis",
			"Hidden Costs",
			"Value for Money",
			"Sourcing Agent Fees",
			"Fee Structures",
			"Transparency in Costs",
			"Return on Investment",
			"Alibaba Costs",
			"Platform Fees",
			"Potential Middlemen",
			"Risk of Additional Costs",
			"Factors to Consider",
			"Assessing Your Needs",
			"Evaluating the Trade-Offs",
			"Long-Term Strategy",
		},
		CaptionPhrases: []string{
			"Alibaba platform interface",
			"Sourcing agent negotiating in China",
		},
		CaptionWithCredit:    "Comparing sourcing fees",
		DuplicateTitlePhrase: "Why Use a Sourcing Agent",
		PlaceholderImageURL:  "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?w=1200&h=630&fit=crop",
	}
}
