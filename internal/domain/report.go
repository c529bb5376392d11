package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// RegionOther is the region choice that expects a free-text override.
	RegionOther = "其他"

	// DefaultDeleteType is used whenever the post was not marked as deleted.
	DefaultDeleteType = "贴文"

	// GuidanceCustom selects the operator's own guidance text instead of a template.
	GuidanceCustom = "自定义"

	DefaultPlatform = "抖音"
)

// ReportInput is the resolved form state for a single submission.
// It is built once per request and passed by value into the builder.
type ReportInput struct {
	Date        time.Time
	Time        string // HH:MM:SS
	Platform    string
	Author      string
	AuthorID    string
	Region      string
	OtherRegion string
	Content     string

	Count        int
	Likes        string // free text, e.g. "约2000"
	Comments     string
	SpreadExtra  string
	AssignedTo   string
	HasOrder     bool
	Deleted      bool
	DeleteTime   string // HH:MM, optional
	DeleteType   string
	GuidanceText string
	Links        string // comma separated
}

// Report is a generated brief. Nothing is persisted; the ID only
// correlates the preview, the downloads and the log lines.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

func NewReport(text string) *Report {
	return &Report{
		ID:          uuid.New(),
		Text:        text,
		GeneratedAt: time.Now().UTC(),
	}
}
