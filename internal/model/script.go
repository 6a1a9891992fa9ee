package model

import "time"

const (
	StatusPending   = "pending"
	StatusValidated = "validated"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

// Speaker identifies which of the two hosts a segment belongs to. HostA is
// always the day's lead host, HostB the co-host.
type Speaker string

const (
	HostA Speaker = "host_a"
	HostB Speaker = "host_b"
)

// SegmentKind tags the narrative role of a segment within the show.
type SegmentKind string

const (
	KindIntro  SegmentKind = "intro"
	KindWinner SegmentKind = "stock_winner"
	KindLoser  SegmentKind = "stock_loser"
	KindOutro  SegmentKind = "outro"
)

// Segment is one attributable block of script text spoken by a single host.
type Segment struct {
	Speaker Speaker     `json:"speaker"`
	Name    string      `json:"name"`
	Text    string      `json:"text"`
	Kind    SegmentKind `json:"segment_kind"`
	Symbol  string      `json:"associated_symbol,omitempty"`
}

// ScriptDocument is the parsed form of a generated broadcast script. Segments
// preserve generation order; order matters for the transition and
// consecutive-speaker checks. A document is never mutated after parsing.
type ScriptDocument struct {
	LeadHost string    `json:"lead_host"`
	CoHost   string    `json:"co_host"`
	Segments []Segment `json:"segments"`
}

// BroadcastScript is the persisted record of one generation run.
type BroadcastScript struct {
	ID            int64
	AirDate       time.Time
	RawText       string
	LeadHost      string
	CoHost        string
	TargetMinutes int
	PromptVersion string
	ModelUsed     string
	Status        string
	CreatedAt     time.Time
}
