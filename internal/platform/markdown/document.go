// Package markdown maintains generated sections inside user-owned markdown
// files without disturbing the hand-written parts.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	separator = "---\n"
	closing   = "---"

	BlockStart = "<!-- patterns:start -->"
	BlockEnd   = "<!-- patterns:end -->"
)

// Document is a markdown file split into YAML frontmatter and body.
type Document struct {
	Meta map[string]any
	Body string
}

func Parse(content string) (Document, error) {
	if !strings.HasPrefix(content, separator) {
		return Document{Meta: map[string]any{}, Body: content}, nil
	}
	rest := strings.TrimPrefix(content, separator)
	var header, body string
	switch idx := strings.Index(rest, "\n"+separator); {
	case strings.HasPrefix(rest, separator):
		body = rest[len(separator):]
	case rest == closing:
		// Empty frontmatter closed at end of file.
	case idx >= 0:
		header, body = rest[:idx], rest[idx+1+len(separator):]
	case strings.HasSuffix(rest, "\n"+closing):
		header = strings.TrimSuffix(rest, "\n"+closing)
	default:
		return Document{}, fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return Document{}, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return Document{Meta: meta, Body: body}, nil
}

// Merge overwrites the given frontmatter keys and leaves the others alone.
func (d *Document) Merge(meta map[string]any) {
	if d.Meta == nil {
		d.Meta = map[string]any{}
	}
	for k, v := range meta {
		d.Meta[k] = v
	}
}

// ReplaceBlock swaps the generated section, appending it when the body has
// none yet.
func (d *Document) ReplaceBlock(generated string) {
	start := strings.Index(d.Body, BlockStart)
	end := strings.Index(d.Body, BlockEnd)
	block := BlockStart + "\n" + generated + "\n" + BlockEnd

	switch {
	case start >= 0 && end > start:
		d.Body = d.Body[:start] + block + d.Body[end+len(BlockEnd):]
	case strings.TrimSpace(d.Body) == "":
		d.Body = block + "\n"
	case strings.HasSuffix(d.Body, "\n"):
		d.Body = d.Body + "\n" + block + "\n"
	default:
		d.Body = d.Body + "\n\n" + block + "\n"
	}
}

func (d Document) Render() (string, error) {
	var buf bytes.Buffer
	if len(d.Meta) > 0 {
		raw, err := yaml.Marshal(d.Meta)
		if err != nil {
			return "", fmt.Errorf("marshal frontmatter: %w", err)
		}
		buf.WriteString(separator)
		buf.Write(raw)
		buf.WriteString(separator)
		if !strings.HasPrefix(d.Body, "\n") {
			buf.WriteString("\n")
		}
	}
	buf.WriteString(d.Body)
	return buf.String(), nil
}

// Table renders a GitHub-flavoured markdown table. Pipes in cells are
// escaped.
func Table(headers []string, rows [][]string) string {
	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, c := range cells {
			sb.WriteString(" " + strings.ReplaceAll(c, "|", `\|`) + " |")
		}
		sb.WriteString("\n")
	}
	writeRow(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, r := range rows {
		writeRow(r)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
