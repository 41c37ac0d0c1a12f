package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"noteva/pkg/models"
)

// SafeJoin joins target under root/sub, rejecting traversal outside it.
// Returns "" for an unsafe path.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// ExportArticle renders an article as markdown with YAML front matter,
// for download or migration to static-site generators.
func ExportArticle(a *models.Article) ([]byte, error) {
	fm := map[string]interface{}{
		"title":  a.Title,
		"slug":   a.Slug,
		"status": a.Status,
		"date":   a.CreatedAt,
	}
	if a.Summary != "" {
		fm["summary"] = a.Summary
	}
	if len(a.Tags) > 0 {
		fm["tags"] = a.Tags
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	if a.Body != "" {
		buf.WriteString("\n")
		buf.WriteString(a.Body)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// ImportArticle parses a markdown file with YAML or TOML front matter
// into a draft article. Files without front matter import as body-only
// drafts titled by filename.
func ImportArticle(filename string, content []byte) (*models.Article, error) {
	a := &models.Article{Status: models.StatusDraft}
	fm, body, err := parseFrontMatter(content)
	if err != nil {
		a.Title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		a.Body = strings.TrimSpace(string(content))
		return a, nil
	}

	if t, ok := fm["title"].(string); ok {
		a.Title = t
	}
	if a.Title == "" {
		a.Title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	if s, ok := fm["slug"].(string); ok {
		a.Slug = s
	}
	if s, ok := fm["summary"].(string); ok {
		a.Summary = s
	}
	if s, ok := fm["status"].(string); ok && (s == models.StatusDraft || s == models.StatusPublished) {
		a.Status = s
	}
	if raw, ok := fm["tags"].([]interface{}); ok {
		for _, v := range raw {
			if t, ok := v.(string); ok {
				a.Tags = append(a.Tags, t)
			}
		}
	}
	a.Body = body
	return a, nil
}

func parseFrontMatter(content []byte) (map[string]interface{}, string, error) {
	str := string(content)
	// YAML (---)
	if strings.HasPrefix(str, "---\n") || strings.HasPrefix(str, "---\r\n") {
		parts := strings.SplitN(str, "---", 3) // "", FM, Body
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := yaml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), nil
			}
		}
	}
	// TOML (+++)
	if strings.HasPrefix(str, "+++\n") || strings.HasPrefix(str, "+++\r\n") {
		parts := strings.SplitN(str, "+++", 3)
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := toml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), nil
			}
		}
	}
	return nil, "", fmt.Errorf("unknown format")
}
