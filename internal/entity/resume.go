package entity

// Resume is a person with every related collection attached. The person
// fields are flattened into the top level of the JSON document.
type Resume struct {
	Person
	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	Skills      []Skill      `json:"skills"`
}
