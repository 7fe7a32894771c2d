package schema

// defaultFields is the heading table used by the degree content folder. The
// variants mirror spellings found in the source files, typos included.
var defaultFields = []Field{
	{ID: "name", Heading: "Degree Name"},
	{ID: "code", Heading: "Code Number of Degree"},
	{ID: "about", Heading: "About"},
	{ID: "keyInformation", Heading: "Key information"},
	{ID: "overview", Heading: "Overview"},
	{ID: "structure", Heading: "Programme structure", Variants: []string{"Programme Structure"}},
	{ID: "admissionRequirements", Heading: "Admission requirements", Variants: []string{
		"Admission & Entry Requirements",
		"Admission equirements",
	}},
	{ID: "fees", Heading: "Fees and funding", Variants: []string{"Fees & Funding", "Fees And Funding"}},
	{ID: "scholarships", Heading: "Scholarships"},
	{ID: "visaInfo", Heading: "Visa information", Variants: []string{"Visa info"}},
	{ID: "workPermit", Heading: "Work permit"},
	{ID: "tuitionFee", Heading: "Tution fee / year", Variants: []string{"Tuition Fee / Year"}},
	{ID: "duration", Heading: "duration of the degree"},
	{ID: "applyDate", Heading: "apply date, start date"},
	{ID: "intake", Heading: "Intake months"},
	{ID: "campusLocation", Heading: "campus location"},
	{ID: "taughtIn", Heading: "taught in"},
	{ID: "universityAffiliation", Heading: "name of university affiliation"},
	{ID: "progression", Heading: "progressions plus careers", Variants: []string{
		"Progressions & Careers",
		"Progressions and Careers",
	}},
	{ID: "faqs", Heading: "General info plus FAQs", Variants: []string{"General Info & FAQs"}},
}

var defaultSchema = MustNew(defaultFields)

// Default returns the compiled-in degree schema.
func Default() *Schema {
	return defaultSchema
}
