package portfolio

// Display-ready shapes for the public site. Every field the page renders
// unconditionally is guaranteed non-empty by the transform step.

type View struct {
	Hero       Hero              `json:"hero"`
	Education  []EducationEntry  `json:"education"`
	Skills     SkillsSection     `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectCard     `json:"projects"`
	Contact    Contact           `json:"contact"`
}

type Hero struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	SocialLinks []Link `json:"socialLinks"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

type SkillsSection struct {
	Categories []SkillGroup `json:"categories"`
}

type SkillGroup struct {
	Title  string       `json:"title"`
	Icon   string       `json:"icon"`
	Skills []SkillLevel `json:"skills"`
}

type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
}

type ProjectCard struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Link        string   `json:"link,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type Contact struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SocialLinks []Link `json:"socialLinks"`
}
