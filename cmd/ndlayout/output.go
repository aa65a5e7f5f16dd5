package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/born-ml/ndlayout/internal/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(10)
)

type summaryPayload struct {
	Shape       []int  `json:"shape"`
	Strides     []int  `json:"strides"`
	Offset      int    `json:"offset"`
	NumElements int    `json:"num_elements"`
	RangeStart  int    `json:"range_start"`
	RangeEnd    int    `json:"range_end"`
	Inline      bool   `json:"inline"`
	Source      string `json:"source,omitempty"`
}

func newSummaryPayload(source string, s pipeline.Summary) summaryPayload {
	return summaryPayload{
		Shape:       s.Shape,
		Strides:     s.Strides,
		Offset:      s.Offset,
		NumElements: s.NumElements,
		RangeStart:  s.DataRange.Start,
		RangeEnd:    s.DataRange.End,
		Inline:      s.Inline,
		Source:      source,
	}
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func renderSummaryPretty(w io.Writer, title string, s pipeline.Summary) {
	fmt.Fprintln(w, titleStyle.Render(title))
	storage := "inline"
	if !s.Inline {
		storage = "heap"
	}
	rows := []struct {
		label string
		value any
	}{
		{"shape", s.Shape},
		{"strides", s.Strides},
		{"offset", s.Offset},
		{"elements", s.NumElements},
		{"range", s.DataRange},
		{"storage", storage},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %v\n", labelStyle.Render(r.label), r.value)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
