package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// maxDescriptionChars bounds the company description sent to the model.
const maxDescriptionChars = 500

const competitorPrompt = `Provide a structured list of sectors and their competitors for the following company description:
%s
Format:
Sector Name :
    Competitor 1
    Competitor 2
    Competitor 3

Leave a line after each sector. Do not use bullet points.`

// Finder asks a Provider for peer competitors of a company.
type Finder struct {
	Provider Provider
}

// Find prompts the model with the company description and parses the response.
func (f *Finder) Find(ctx context.Context, profile types.CompanyProfile) ([]types.SectorCompetitors, error) {
	desc := profile.Summary
	if len(desc) > maxDescriptionChars {
		desc = desc[:maxDescriptionChars]
	}
	text, err := f.Provider.Generate(ctx, fmt.Sprintf(competitorPrompt, desc))
	if err != nil {
		return nil, err
	}
	return ParseCompetitors(text)
}

// ParseCompetitors extracts sector-grouped competitor names from free text.
//
// Blocks are separated by blank lines. Within a block the first line is the
// sector name (trailing ':' trimmed) and the remaining lines are competitors.
// A lone line is accepted only when comma-separated ("Microsoft, Google,
// Amazon"). Leading list markers are stripped, empty entries dropped. Output
// with no extractable names is a ParseError, never an empty list.
func ParseCompetitors(text string) ([]types.SectorCompetitors, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var sectors []types.SectorCompetitors
	for _, block := range strings.Split(text, "\n\n") {
		lines := make([]string, 0, 8)
		for _, l := range strings.Split(block, "\n") {
			if t := strings.TrimSpace(l); t != "" {
				lines = append(lines, t)
			}
		}
		switch {
		case len(lines) == 0:
			continue
		case len(lines) == 1:
			// No line structure: only a comma-delimited list is usable.
			if !strings.Contains(lines[0], ",") {
				continue
			}
			names := splitNames(lines[0])
			if len(names) > 0 {
				sectors = append(sectors, types.SectorCompetitors{Competitors: names})
			}
		default:
			sector := strings.TrimSpace(strings.TrimSuffix(lines[0], ":"))
			comps := make([]string, 0, len(lines)-1)
			for _, l := range lines[1:] {
				if name := trimMarker(l); name != "" {
					comps = append(comps, name)
				}
			}
			if len(comps) > 0 {
				sectors = append(sectors, types.SectorCompetitors{Sector: sector, Competitors: comps})
			}
		}
	}
	if len(sectors) == 0 {
		return nil, &types.ParseError{Reason: "no competitor names in model output"}
	}
	return sectors, nil
}

func splitNames(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := trimMarker(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// trimMarker strips leading list markers ("-", "*", "•", "1.", "2)") and
// surrounding whitespace.
func trimMarker(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•")
	// numeric markers
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
