package inventory

// Question is a single inventory statement. ID is its 0-based position in
// the question bank and never changes after load.
type Question struct {
	ID          int    `yaml:"-"`
	Statement   string `yaml:"statement" validate:"required,nocr"`
	Translation string `yaml:"translation" validate:"nocr"`
}

// Category groups questions whose affirmative answers are tallied together.
// Members holds 0-based question IDs.
type Category struct {
	Label   string `yaml:"label" validate:"required,nocr"`
	Members []int  `yaml:"members" validate:"required,min=1"`
}

// Inventory is the static question bank plus its category map.
// It is loaded once and treated as read-only for the life of the process.
type Inventory struct {
	// Name is the short identifier used in export file names.
	Name string `yaml:"name" validate:"required,excludesall=/\\"`

	// Title is the display name shown in headers.
	Title string `yaml:"title" validate:"required"`

	// SchemaVersion is the semver of the inventory file format.
	SchemaVersion string `yaml:"schema_version" validate:"required"`

	// ChartMax is the fixed y-axis maximum for the results chart.
	ChartMax int `yaml:"chart_max" validate:"gt=0"`

	// PerPage is the number of questions shown at once.
	PerPage int `yaml:"per_page" validate:"gt=0"`

	Questions  []Question `yaml:"questions" validate:"required,min=1,dive"`
	Categories []Category `yaml:"categories" validate:"required,min=1,dive"`
}

// NumQuestions returns the size of the question bank.
func (inv *Inventory) NumQuestions() int {
	return len(inv.Questions)
}

// Question returns the question at id and whether it exists.
func (inv *Inventory) Question(id int) (Question, bool) {
	if id < 0 || id >= len(inv.Questions) {
		return Question{}, false
	}
	return inv.Questions[id], true
}

// MaxTotal returns the largest category size.
func (inv *Inventory) MaxTotal() int {
	m := 0
	for _, c := range inv.Categories {
		if len(c.Members) > m {
			m = len(c.Members)
		}
	}
	return m
}

// CategoriesOf returns the labels of every category containing question id,
// in category order.
func (inv *Inventory) CategoriesOf(id int) []string {
	var labels []string
	for _, c := range inv.Categories {
		for _, m := range c.Members {
			if m == id {
				labels = append(labels, c.Label)
				break
			}
		}
	}
	return labels
}
