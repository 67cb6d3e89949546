package service

import (
	"strings"

	"devtools/backend/internal/model"

	"github.com/pmezard/go-difflib/difflib"
)

// ComputeDiff returns a line diff of oldText against newText.
func ComputeDiff(oldText, newText string) model.DiffResponse {
	a := splitLines(oldText)
	b := splitLines(newText)

	chunks := []model.DiffChunk{}
	matcher := difflib.NewMatcher(a, b)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			chunks = appendLines(chunks, "equal", a[op.I1:op.I2])
		case 'd':
			chunks = appendLines(chunks, "delete", a[op.I1:op.I2])
		case 'i':
			chunks = appendLines(chunks, "insert", b[op.J1:op.J2])
		case 'r':
			chunks = appendLines(chunks, "delete", a[op.I1:op.I2])
			chunks = appendLines(chunks, "insert", b[op.J1:op.J2])
		}
	}
	return model.DiffResponse{Chunks: chunks}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func appendLines(chunks []model.DiffChunk, tag string, lines []string) []model.DiffChunk {
	for _, line := range lines {
		chunks = append(chunks, model.DiffChunk{Tag: tag, Text: line + "\n"})
	}
	return chunks
}
