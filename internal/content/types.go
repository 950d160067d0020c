package content

// Link is a named hyperlink used by navigation, footer and social lists.
type Link struct {
	Name string
	Href string
}

// Profile holds the personal details shown across the page.
type Profile struct {
	Name      string
	Headline  string
	Tagline   string
	Summary   string
	About     string // markdown
	ResumeURL string
	Email     string
	Phone     string
	PhoneHref string
	LinkedIn  Link
	GitHubURL string
	SiteURL   string
}

// Project is a portfolio project card. Projects have no identity beyond
// their position in the list.
type Project struct {
	Title        string
	Description  string
	ImageSrc     string
	Technologies []string
	ProjectURL   string
	GitHubURL    string
}

// VisibleTags returns at most n technology tags and the count of the rest.
func (p Project) VisibleTags(n int) ([]string, int) {
	if len(p.Technologies) <= n {
		return p.Technologies, 0
	}
	return p.Technologies[:n], len(p.Technologies) - n
}

// SkillCategory groups skill labels under a heading. Order is significant.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Entry is an education or experience record.
type Entry struct {
	Title        string
	Organization string
	Dates        string
	Notes        []string
}

// Publication is a published paper with an external link.
type Publication struct {
	Title string
	Venue string
	URL   string
	Label string
}

// Site is the complete set of display content for the page.
type Site struct {
	Profile      Profile
	Nav          []Link
	FooterLinks  []Link
	Socials      []Link
	Projects     []Project
	Skills       []SkillCategory
	Education    []Entry
	Experience   []Entry
	Publications []Publication
}
