package service

import (
	"fmt"
	"strings"

	"github.com/rgdevment/opinion-brief/internal/domain"
)

const (
	ReportTitle = "舆情快报"

	// SectionIndent is two ideographic spaces, the usual paragraph indent in
	// Chinese official documents.
	SectionIndent = "　　"

	linkSeparator    = "、"
	defaultTerminal  = "。"
	monitoringFooter = "市委网信办将持续关注相关网上动态。"
)

var terminalMarks = []string{"。", ".", "！", "!", "？", "?"}

// BuildReport renders the four-section brief. It never fails; callers are
// expected to have passed the input through Validate first.
func BuildReport(in domain.ReportInput) string {
	timestamp := in.Date.Format("2006年01月02日") + in.Time

	basic := fmt.Sprintf("%s一、基本情况\n%s%s，%s用户“%s”%s发布%s称，%s%s",
		SectionIndent,
		SectionIndent, timestamp, in.Platform, in.Author, authorIDPart(in.AuthorID),
		in.DeleteType, regionPhrase(in.Region, in.OtherRegion), normalizeSentence(in.Content),
	)

	spreadExtra := ""
	if strings.TrimSpace(in.SpreadExtra) != "" {
		spreadExtra = normalizeSentence(in.SpreadExtra)
	}
	spread := fmt.Sprintf("%s二、传播情况\n%s该系列%s共%d条，累计点赞%s次、%s条评论。%s",
		SectionIndent,
		SectionIndent, in.DeleteType, in.Count, in.Likes, in.Comments, spreadExtra,
	)

	measures := fmt.Sprintf("%s三、工作措施\n%s市委网信办已第一时间交办%s核实处置%s%s。\n%s%s%s",
		SectionIndent,
		SectionIndent, in.AssignedTo, orderClause(in.HasOrder, in.AssignedTo),
		deletionClause(in.Deleted, in.DeleteType, in.DeleteTime),
		SectionIndent, normalizeSentence(in.GuidanceText), monitoringFooter,
	)

	links := SectionIndent + "四、链接：" + joinLinks(in.Links)

	return strings.Join([]string{ReportTitle, basic, spread, measures, links}, "\n")
}

// normalizeSentence trims text and terminates it with 。 unless it already
// ends with a full stop, exclamation or question mark.
func normalizeSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	for _, mark := range terminalMarks {
		if strings.HasSuffix(text, mark) {
			return text
		}
	}
	return text + defaultTerminal
}

func authorIDPart(id string) string {
	if id == "" {
		return ""
	}
	return "（ID：" + id + "）"
}

// regionPhrase: an "other" choice without an override yields nothing rather
// than a generic label.
func regionPhrase(region, override string) string {
	override = strings.TrimSpace(override)
	switch {
	case region == domain.RegionOther && override != "":
		return override + "地区"
	case region == domain.RegionOther:
		return ""
	case region != "":
		return region + "地区"
	default:
		return ""
	}
}

func deletionClause(deleted bool, deleteType, deleteTime string) string {
	if !deleted {
		return ""
	}
	if deleteTime != "" {
		return fmt.Sprintf("，%s于%s已删除", deleteType, deleteTime)
	}
	return fmt.Sprintf("，%s已删除", deleteType)
}

func orderClause(hasOrder bool, assignedTo string) string {
	if !hasOrder || assignedTo == "" {
		return ""
	}
	return "，并向" + assignedTo + "下发网络舆情交办单"
}

func splitLinks(raw string) []string {
	var links []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			links = append(links, token)
		}
	}
	return links
}

func joinLinks(raw string) string {
	return strings.Join(splitLinks(raw), linkSeparator)
}
