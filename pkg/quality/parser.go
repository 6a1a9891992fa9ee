package quality

import (
	"regexp"
	"strings"

	"github.com/csaunders4z/market-voice-sub001/internal/model"
)

// ParserConfig names the two hosts for a given air date. The expected lead
// host is mapped to HostA, the co-host to HostB.
type ParserConfig struct {
	LeadHost string
	CoHost   string
}

var symbolPattern = regexp.MustCompile(`\(([A-Z]{1,5})\)`)

const (
	sectionPreamble = iota
	sectionWinners
	sectionLosers
)

type rawSegment struct {
	name    string
	lines   []string
	section int
}

// ParseScript decomposes raw generated script text into a ScriptDocument.
//
// A segment starts at a line of the form "Name: text" where Name matches one
// of the configured hosts case-insensitively; following plain lines continue
// that segment. "[WINNERS]" and "[LOSERS]" marker lines split the stock
// sections. The first segment (before any marker) is the intro, the final
// segment is the outro, and everything between is tagged winner or loser by
// the section it falls in.
//
// It returns a ParseError when a non-empty script contains no recognizable
// speaker labels, or when the intro/outro structure around the section
// markers is absent. A segment with empty text after its label is retained
// and counts as zero words.
func ParseScript(raw string, cfg ParserConfig) (*model.ScriptDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Reason: "empty script"}
	}

	var segs []rawSegment
	section := sectionPreamble
	sawWinners := false
	current := -1

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isSectionMarker(line, "winners"):
			section = sectionWinners
			sawWinners = true
			current = -1
			continue
		case isSectionMarker(line, "losers"):
			section = sectionLosers
			current = -1
			continue
		}

		if name, rest, ok := splitSpeakerLine(line, cfg); ok {
			segs = append(segs, rawSegment{name: name, lines: []string{rest}, section: section})
			current = len(segs) - 1
			continue
		}

		// Continuation of the current segment. Text before the first
		// speaker label (titles, stage directions) is dropped.
		if current >= 0 {
			segs[current].lines = append(segs[current].lines, line)
		}
	}

	if len(segs) == 0 {
		return nil, &ParseError{Reason: "no recognizable speaker labels"}
	}
	if !sawWinners {
		return nil, &ParseError{Reason: "missing [WINNERS] section marker"}
	}
	if segs[0].section != sectionPreamble {
		return nil, &ParseError{Reason: "missing intro before first stock section"}
	}
	if segs[len(segs)-1].section == sectionPreamble {
		return nil, &ParseError{Reason: "missing outro after stock sections"}
	}

	doc := &model.ScriptDocument{
		LeadHost: cfg.LeadHost,
		CoHost:   cfg.CoHost,
		Segments: make([]model.Segment, 0, len(segs)),
	}

	for i, rs := range segs {
		var kind model.SegmentKind
		switch {
		case rs.section == sectionPreamble:
			kind = model.KindIntro
		case i == len(segs)-1:
			kind = model.KindOutro
		case rs.section == sectionWinners:
			kind = model.KindWinner
		default:
			kind = model.KindLoser
		}

		text := joinSegmentText(rs.lines)
		seg := model.Segment{
			Speaker: speakerFor(rs.name, cfg),
			Name:    rs.name,
			Text:    text,
			Kind:    kind,
		}
		if kind == model.KindWinner || kind == model.KindLoser {
			if m := symbolPattern.FindStringSubmatch(text); m != nil {
				seg.Symbol = m[1]
			}
		}
		doc.Segments = append(doc.Segments, seg)
	}

	return doc, nil
}

// isSectionMarker matches lines like "[WINNERS]", "**[winners]**" or
// "## [WINNERS]" case-insensitively.
func isSectionMarker(line, name string) bool {
	trimmed := strings.Trim(line, "*#_- \t")
	return strings.EqualFold(trimmed, "["+name+"]")
}

// splitSpeakerLine recognizes "Name: text" lines for the configured hosts.
// The returned name is the canonical configured spelling; the text may be
// empty.
func splitSpeakerLine(line string, cfg ParserConfig) (name, text string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}

	label := strings.Trim(strings.TrimSpace(line[:idx]), "*_")
	switch {
	case strings.EqualFold(label, cfg.LeadHost):
		name = cfg.LeadHost
	case strings.EqualFold(label, cfg.CoHost):
		name = cfg.CoHost
	default:
		return "", "", false
	}

	return name, strings.TrimSpace(line[idx+1:]), true
}

func speakerFor(name string, cfg ParserConfig) model.Speaker {
	if strings.EqualFold(name, cfg.LeadHost) {
		return model.HostA
	}
	return model.HostB
}

func joinSegmentText(lines []string) string {
	var parts []string
	for _, l := range lines {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}
