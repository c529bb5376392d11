package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rgdevment/opinion-brief/internal/domain"
	"github.com/rgdevment/opinion-brief/internal/platform/catalog"
)

const dateLayout = "2006-01-02"

// ReportRequest is the raw form submission, accepted either as JSON or as
// an urlencoded form.
type ReportRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Platform    string `json:"platform"`
	Author      string `json:"author"`
	AuthorID    string `json:"author_id"`
	Region      string `json:"region"`
	OtherRegion string `json:"other_region"`
	Content     string `json:"content"`

	Count       int    `json:"count"`
	Likes       string `json:"likes"`
	Comments    string `json:"comments"`
	SpreadExtra string `json:"spread_extra"`

	AssignedTo string `json:"assigned_to"`
	HasOrder   bool   `json:"has_order"`
	Deleted    bool   `json:"deleted"`
	DeleteTime string `json:"delete_time"`
	DeleteType string `json:"delete_type"`

	GuidanceTemplate string `json:"guidance_template"`
	GuidanceText     string `json:"guidance_text"`
	Links            string `json:"links"`
}

func formRequest(r *http.Request) (*ReportRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	f := r.PostForm

	req := &ReportRequest{
		Date:             f.Get("date"),
		Time:             f.Get("time"),
		Platform:         f.Get("platform"),
		Author:           f.Get("author"),
		AuthorID:         f.Get("author_id"),
		Region:           f.Get("region"),
		OtherRegion:      f.Get("other_region"),
		Content:          f.Get("content"),
		Likes:            f.Get("likes"),
		Comments:         f.Get("comments"),
		SpreadExtra:      f.Get("spread_extra"),
		AssignedTo:       f.Get("assigned_to"),
		HasOrder:         checkbox(f.Get("has_order")),
		Deleted:          checkbox(f.Get("deleted")),
		DeleteTime:       f.Get("delete_time"),
		DeleteType:       f.Get("delete_type"),
		GuidanceTemplate: f.Get("guidance_template"),
		GuidanceText:     f.Get("guidance_text"),
		Links:            f.Get("links"),
	}

	if raw := strings.TrimSpace(f.Get("count")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("count must be an integer")
		}
		req.Count = n
	}
	return req, nil
}

func checkbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// ToInput resolves the submission against the catalog. Errors here are
// malformed requests; the operator-facing checks live in service.Validate.
func (r *ReportRequest) ToInput(cat *catalog.Catalog, today time.Time) (domain.ReportInput, error) {
	date := today
	if s := strings.TrimSpace(r.Date); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return domain.ReportInput{}, fmt.Errorf("date must be YYYY-MM-DD: %q", s)
		}
		date = d
	}

	count := r.Count
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return domain.ReportInput{}, errors.New("count must be at least 1")
	}

	region := strings.TrimSpace(r.Region)
	if region != "" && !cat.HasRegion(region) {
		return domain.ReportInput{}, fmt.Errorf("unknown region %q", region)
	}
	otherRegion := ""
	if region == domain.RegionOther {
		otherRegion = strings.TrimSpace(r.OtherRegion)
	}

	deleteType := domain.DefaultDeleteType
	deleteTime := ""
	if r.Deleted {
		if t := strings.TrimSpace(r.DeleteType); t != "" {
			if !cat.HasDeleteType(t) {
				return domain.ReportInput{}, fmt.Errorf("unknown delete_type %q", t)
			}
			deleteType = t
		}
		deleteTime = strings.TrimSpace(r.DeleteTime)
	}

	guidance := r.GuidanceText
	if key := strings.TrimSpace(r.GuidanceTemplate); key != "" && key != domain.GuidanceCustom {
		text, ok := cat.Guidance(key)
		if !ok {
			return domain.ReportInput{}, fmt.Errorf("unknown guidance_template %q", key)
		}
		guidance = text
	}

	platform := strings.TrimSpace(r.Platform)
	if platform == "" {
		platform = cat.DefaultPlatform
	}

	return domain.ReportInput{
		Date:         date,
		Time:         strings.TrimSpace(r.Time),
		Platform:     platform,
		Author:       strings.TrimSpace(r.Author),
		AuthorID:     strings.TrimSpace(r.AuthorID),
		Region:       region,
		OtherRegion:  otherRegion,
		Content:      strings.TrimSpace(r.Content),
		Count:        count,
		Likes:        strings.TrimSpace(r.Likes),
		Comments:     strings.TrimSpace(r.Comments),
		SpreadExtra:  strings.TrimSpace(r.SpreadExtra),
		AssignedTo:   strings.TrimSpace(r.AssignedTo),
		HasOrder:     r.HasOrder,
		Deleted:      r.Deleted,
		DeleteTime:   deleteTime,
		DeleteType:   deleteType,
		GuidanceText: strings.TrimSpace(guidance),
		Links:        r.Links,
	}, nil
}
