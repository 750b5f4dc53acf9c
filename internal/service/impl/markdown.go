package core

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"gitfolio/internal/domain"
	"gitfolio/internal/frontmatter"
)

// The type-specific frontmatter field mappings. Projects and blogs are a
// header plus markdown body; the profile is header only. Empty fields are
// dropped by the codec, so decoding fills defaults back in.

func encodeProject(p domain.Project) string {
	r := frontmatter.NewRecord()
	r.Set("title", p.Title)
	r.Set("description", p.Description)
	r.Set("imageUrl", p.ImageURL)
	r.Set("tags", emptyIfNil(p.Tags))
	r.Set("link", p.Link)
	r.Set("github", p.GitHub)
	r.Set("createdAt", p.CreatedAt)
	return frontmatter.Generate(r) + "\n" + p.Content
}

func decodeProject(id, collection, text string) domain.Project {
	r, body := frontmatter.Parse(text)
	return domain.Project{
		ID:          id,
		Collection:  collection,
		Title:       orDefault(r.String("title"), id),
		Description: r.String("description"),
		Content:     strings.TrimPrefix(body, "\n"),
		ImageURL:    r.String("imageUrl"),
		Tags:        emptyIfNil(r.Strings("tags")),
		Link:        r.String("link"),
		GitHub:      r.String("github"),
		CreatedAt:   r.String("createdAt"),
	}
}

func encodeBlog(b domain.BlogPost) string {
	r := frontmatter.NewRecord()
	r.Set("title", b.Title)
	r.Set("excerpt", b.Excerpt)
	r.Set("coverImage", b.CoverImage)
	r.Set("tags", emptyIfNil(b.Tags))
	r.Set("publishedAt", b.PublishedAt)
	r.Set("status", b.Status)
	return frontmatter.Generate(r) + "\n" + b.Content
}

func decodeBlog(id, collection, text string) domain.BlogPost {
	r, body := frontmatter.Parse(text)
	return domain.BlogPost{
		ID:          id,
		Collection:  collection,
		Title:       orDefault(r.String("title"), id),
		Excerpt:     r.String("excerpt"),
		Content:     strings.TrimPrefix(body, "\n"),
		CoverImage:  r.String("coverImage"),
		Tags:        emptyIfNil(r.Strings("tags")),
		PublishedAt: r.String("publishedAt"),
		Status:      orDefault(r.String("status"), "published"),
	}
}

// The resume sections are structured records, which the flat header format
// cannot carry natively; they are stored as JSON strings under their keys.
func encodeProfile(p domain.Profile) string {
	r := frontmatter.NewRecord()
	r.Set("name", p.Name)
	r.Set("title", p.Title)
	r.Set("bio", p.Bio)
	r.Set("email", p.Email)
	r.Set("avatarUrl", p.AvatarURL)
	r.Set("github", p.Socials.GitHub)
	r.Set("twitter", p.Socials.Twitter)
	r.Set("linkedin", p.Socials.LinkedIn)
	r.Set("experience", encodeJSON(p.Resume.Experience))
	r.Set("education", encodeJSON(p.Resume.Education))
	r.Set("skills", encodeJSON(p.Resume.Skills))
	return frontmatter.Generate(r) + "\n"
}

func decodeProfile(text string) domain.Profile {
	r, _ := frontmatter.Parse(text)
	p := domain.Profile{
		Name:      orDefault(r.String("name"), "User"),
		Title:     r.String("title"),
		Bio:       r.String("bio"),
		Email:     r.String("email"),
		AvatarURL: r.String("avatarUrl"),
		Socials: domain.Socials{
			GitHub:   r.String("github"),
			Twitter:  r.String("twitter"),
			LinkedIn: r.String("linkedin"),
		},
	}
	decodeJSON(r.String("experience"), &p.Resume.Experience)
	decodeJSON(r.String("education"), &p.Resume.Education)
	decodeJSON(r.String("skills"), &p.Resume.Skills)
	return p
}

func encodeCollectionMarker(name, description string) string {
	r := frontmatter.NewRecord()
	r.Set("name", name)
	r.Set("description", description)
	return frontmatter.Generate(r)
}

// decodeCollectionMarker falls back to the directory name when the marker
// is missing a name.
func decodeCollectionMarker(id, text string) domain.Collection {
	r, _ := frontmatter.Parse(text)
	return domain.Collection{
		ID:          id,
		Name:        orDefault(r.String("name"), id),
		Description: r.String("description"),
	}
}

func encodeJSON(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	if string(encoded) == "null" || string(encoded) == "[]" {
		return ""
	}
	return string(encoded)
}

// decodeJSON swallows malformed stored values; the field stays empty.
func decodeJSON(raw string, dst any) {
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Debug().Err(err).Msg("discarding malformed resume section")
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
