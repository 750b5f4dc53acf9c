package domain

import "errors"

// ContentType identifies which of the three markdown-backed content kinds
// an operation targets. It selects both the repository path layout and the
// frontmatter field mapping.
type ContentType string

const (
	TypeProfile ContentType = "profile"
	TypeProject ContentType = "project"
	TypeBlog    ContentType = "blog"
)

var ErrInvalidType = errors.New("invalid content type")

// Dir returns the plural directory segment used under data/ for listable
// types ("projects", "blogs"). The profile has no directory.
func (t ContentType) Dir() (string, error) {
	switch t {
	case TypeProject:
		return "projects", nil
	case TypeBlog:
		return "blogs", nil
	}
	return "", ErrInvalidType
}

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case TypeProfile, TypeProject, TypeBlog:
		return ContentType(s), nil
	}
	return "", ErrInvalidType
}

// ParseSectionType accepts the plural directory form used by the collection
// and image endpoints ("projects"/"blogs") and maps it to the content type.
func ParseSectionType(s string) (ContentType, error) {
	switch s {
	case "projects":
		return TypeProject, nil
	case "blogs":
		return TypeBlog, nil
	}
	return "", ErrInvalidType
}

type Project struct {
	ID          string   `json:"id"`
	Collection  string   `json:"collection,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

type BlogPost struct {
	ID          string   `json:"id"`
	Collection  string   `json:"collection,omitempty"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
	Status      string   `json:"status"`
}

type ResumeItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Skill struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Resume struct {
	Experience []ResumeItem `json:"experience"`
	Education  []ResumeItem `json:"education"`
	Skills     []Skill      `json:"skills"`
}

type Socials struct {
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Profile struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Bio       string  `json:"bio"`
	Email     string  `json:"email"`
	AvatarURL string  `json:"avatarUrl,omitempty"`
	Socials   Socials `json:"socials"`
	Resume    Resume  `json:"resume"`
}

// RepositorySummary is one entry of the importable-repository listing the
// admin picks from.
type RepositorySummary struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
	Homepage    string `json:"homepage,omitempty"`
	Private     bool   `json:"private"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Collection is a named sub-directory grouping items of one type. Its
// existence is equivalent to the presence of its marker file; Name falls
// back to the directory name when the marker is unreadable.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
