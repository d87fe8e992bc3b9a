// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package content embeds the markdown sources for the public marketing
// site. Pages live under pages/, blog posts under blog/; each file name
// minus the .md extension is the public slug.
package content

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed pages blog
var files embed.FS

// Page is a markdown source with its slug and the title pulled from the
// first level-one heading.
type Page struct {
	Slug   string
	Title  string
	Source string
}

// LoadPage reads a marketing page by slug. Returns nil when no page with
// that slug exists.
func LoadPage(slug string) (*Page, error) {
	return load("pages", slug)
}

// LoadPost reads a blog post by slug. Returns nil when no post with that
// slug exists.
func LoadPost(slug string) (*Page, error) {
	return load("blog", slug)
}

// ListPosts returns all blog posts sorted by slug descending, which with
// the date-prefixed file naming puts the newest post first.
func ListPosts() ([]Page, error) {
	entries, err := fs.ReadDir(files, "blog")
	if err != nil {
		return nil, err
	}

	var posts []Page
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		p, err := load("blog", strings.TrimSuffix(name, ".md"))
		if err != nil {
			return nil, err
		}
		if p != nil {
			posts = append(posts, *p)
		}
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].Slug > posts[j].Slug })
	return posts, nil
}

func load(dir, slug string) (*Page, error) {
	if !validSlug(slug) {
		return nil, nil
	}
	raw, err := files.ReadFile(dir + "/" + slug + ".md")
	if err != nil {
		// Embedded FS misses only mean the page does not exist.
		return nil, nil
	}
	src := string(raw)
	return &Page{Slug: slug, Title: extractTitle(src), Source: src}, nil
}

// validSlug accepts lowercase letters, digits, and hyphens only. The
// embedded FS cannot be traversed, but rejecting junk early keeps slugs
// out of cache keys and logs.
func validSlug(slug string) bool {
	if slug == "" || len(slug) > 120 {
		return false
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// extractTitle returns the text of the first "# " heading, or "" when the
// document has none.
func extractTitle(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}
