// Package repopath computes the repository-relative paths of the content
// layout. All functions are pure; the only failure mode is an unknown
// content type.
package repopath

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gitfolio/internal/domain"
)

// MarkerFile is the hidden per-collection metadata file. Writing it is what
// materialises the collection's directory in the remote store.
const MarkerFile = ".collection.md"

const ProfilePath = "data/profile.md"

// Resolve returns the canonical file path for an item. The profile lives at
// a fixed path and ignores the collection; projects and blogs nest one level
// deeper when a collection is set.
func Resolve(t domain.ContentType, id, collection string) (string, error) {
	if t == domain.TypeProfile {
		return ProfilePath, nil
	}

	dir, err := t.Dir()
	if err != nil {
		return "", err
	}
	if collection != "" {
		return fmt.Sprintf("data/%s/%s/%s.md", dir, collection, id), nil
	}
	return fmt.Sprintf("data/%s/%s.md", dir, id), nil
}

// SectionRoot returns the listing root for a type ("data/projects").
func SectionRoot(t domain.ContentType) (string, error) {
	dir, err := t.Dir()
	if err != nil {
		return "", err
	}
	return "data/" + dir, nil
}

// CollectionDir returns the directory holding a collection's files.
func CollectionDir(t domain.ContentType, id string) (string, error) {
	root, err := SectionRoot(t)
	if err != nil {
		return "", err
	}
	return root + "/" + id, nil
}

// MarkerPath returns the path of a collection's marker file.
func MarkerPath(t domain.ContentType, id string) (string, error) {
	dir, err := CollectionDir(t, id)
	if err != nil {
		return "", err
	}
	return dir + "/" + MarkerFile, nil
}

var extensions = map[string]string{
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/png":     "png",
	"image/webp":    "webp",
	"image/gif":     "gif",
	"image/svg+xml": "svg",
}

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ImagePath builds a unique upload path under images/{projects|blogs}. The
// name combines a millisecond timestamp, a short random token and a slug of
// the original filename, so collisions need the same millisecond and token.
func ImagePath(t domain.ContentType, original, mimeType, random string, now time.Time) (string, error) {
	dir, err := t.Dir()
	if err != nil {
		return "", err
	}

	ext, ok := extensions[mimeType]
	if !ok {
		ext = "jpg"
	}

	base := strings.ToLower(slugStrip.ReplaceAllString(original, "-"))
	if len(base) > 50 {
		base = base[:50]
	}

	return fmt.Sprintf("images/%s/%d-%s-%s.%s", dir, now.UnixMilli(), random, base, ext), nil
}

var (
	rawURL      = regexp.MustCompile(`raw\.githubusercontent\.com/[^/]+/[^/]+/[^/]+/(.+)`)
	jsDelivrURL = regexp.MustCompile(`cdn\.jsdelivr\.net/gh/[^/]+/[^/]+@[^/]+/(.+)`)
)

// ImagePathFromURL maps a public image URL back to its repository path.
// Both raw.githubusercontent.com and the jsDelivr CDN form are accepted.
func ImagePathFromURL(imageURL string) (string, bool) {
	if m := rawURL.FindStringSubmatch(imageURL); m != nil {
		return m[1], true
	}
	if m := jsDelivrURL.FindStringSubmatch(imageURL); m != nil {
		return m[1], true
	}
	return "", false
}

// RawURL returns the public raw.githubusercontent.com URL of a repository
// file, which is what content records store for uploaded images.
func RawURL(repo, branch, path string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", repo, branch, path)
}
