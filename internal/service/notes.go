package service

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// NotesRenderer turns markdown preparation notes into sanitized HTML
type NotesRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewNotesRenderer creates a renderer with GitHub flavoured markdown and the
// user-generated-content sanitizing policy
func NewNotesRenderer() *NotesRenderer {
	return &NotesRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts notes to HTML. Raw HTML in the notes never survives sanitizing.
func (r *NotesRenderer) Render(notes string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(notes), &buf); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
