package models

// Choice is a stored value paired with its human readable label
type Choice struct {
	Value string
	Label string
}

type Choices []Choice

func (s Choices) Has(value string) bool {
	for _, c := range s {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Index is the position of value in the set, len(s) when it is not a member
func (s Choices) Index(value string) int {
	for i, c := range s {
		if c.Value == value {
			return i
		}
	}
	return len(s)
}

func (s Choices) Label(value string) string {
	for _, c := range s {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// TechnologyCategory groups technologies on the site
type TechnologyCategory string

const (
	TechnologyFrontend  TechnologyCategory = "frontend"
	TechnologyBackend   TechnologyCategory = "backend"
	TechnologyDatabase  TechnologyCategory = "database"
	TechnologyFramework TechnologyCategory = "framework"
	TechnologyLanguage  TechnologyCategory = "language"
	TechnologyTool      TechnologyCategory = "tool"
	TechnologyOther     TechnologyCategory = "other"
)

var TechnologyCategories = Choices{
	{string(TechnologyFrontend), "Frontend"},
	{string(TechnologyBackend), "Backend"},
	{string(TechnologyDatabase), "Database"},
	{string(TechnologyFramework), "Framework"},
	{string(TechnologyLanguage), "Programming Language"},
	{string(TechnologyTool), "Tool"},
	{string(TechnologyOther), "Other"},
}

func (c TechnologyCategory) Valid() bool   { return TechnologyCategories.Has(string(c)) }
func (c TechnologyCategory) Label() string { return TechnologyCategories.Label(string(c)) }

// ProjectStatus is the lifecycle stage of a portfolio project
type ProjectStatus string

const (
	ProjectPlanning    ProjectStatus = "planning"
	ProjectDevelopment ProjectStatus = "development"
	ProjectCompleted   ProjectStatus = "completed"
	ProjectMaintenance ProjectStatus = "maintenance"
	ProjectArchived    ProjectStatus = "archived"
)

var ProjectStatuses = Choices{
	{string(ProjectPlanning), "Planning"},
	{string(ProjectDevelopment), "In Development"},
	{string(ProjectCompleted), "Completed"},
	{string(ProjectMaintenance), "Maintenance"},
	{string(ProjectArchived), "Archived"},
}

func (s ProjectStatus) Valid() bool   { return ProjectStatuses.Has(string(s)) }
func (s ProjectStatus) Label() string { return ProjectStatuses.Label(string(s)) }

// BlogCategory classifies blog posts
type BlogCategory string

const (
	BlogLearning      BlogCategory = "learning"
	BlogTutorial      BlogCategory = "tutorial"
	BlogProjectUpdate BlogCategory = "project_update"
	BlogReflection    BlogCategory = "reflection"
	BlogTechReview    BlogCategory = "tech_review"
	BlogCoursework    BlogCategory = "coursework"
)

var BlogCategories = Choices{
	{string(BlogLearning), "Learning"},
	{string(BlogTutorial), "Tutorial"},
	{string(BlogProjectUpdate), "Project Update"},
	{string(BlogReflection), "Reflection"},
	{string(BlogTechReview), "Tech Review"},
	{string(BlogCoursework), "Coursework"},
}

func (c BlogCategory) Valid() bool   { return BlogCategories.Has(string(c)) }
func (c BlogCategory) Label() string { return BlogCategories.Label(string(c)) }

// SkillCategory groups skills on the about page. The declaration order of
// SkillCategories is the order groups are rendered in.
type SkillCategory string

const (
	SkillProgramming SkillCategory = "programming"
	SkillFramework   SkillCategory = "framework"
	SkillDatabase    SkillCategory = "database"
	SkillTools       SkillCategory = "tools"
	SkillSoftSkills  SkillCategory = "soft_skills"
	SkillConcepts    SkillCategory = "concepts"
)

var SkillCategories = Choices{
	{string(SkillProgramming), "Programming Languages"},
	{string(SkillFramework), "Frameworks & Libraries"},
	{string(SkillDatabase), "Databases"},
	{string(SkillTools), "Tools & Software"},
	{string(SkillSoftSkills), "Soft Skills"},
	{string(SkillConcepts), "Concepts & Methodologies"},
}

func (c SkillCategory) Valid() bool   { return SkillCategories.Has(string(c)) }
func (c SkillCategory) Label() string { return SkillCategories.Label(string(c)) }

// Proficiency is how well a skill is known
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

var Proficiencies = Choices{
	{string(ProficiencyBeginner), "Beginner"},
	{string(ProficiencyIntermediate), "Intermediate"},
	{string(ProficiencyAdvanced), "Advanced"},
	{string(ProficiencyExpert), "Expert"},
}

func (p Proficiency) Valid() bool   { return Proficiencies.Has(string(p)) }
func (p Proficiency) Label() string { return Proficiencies.Label(string(p)) }
