package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgdevment/opinion-brief/internal/domain"
)

type GuidanceTemplate struct {
	Key  string `yaml:"key" json:"key"`
	Text string `yaml:"text" json:"text"`
}

// Catalog holds the choice lists offered by the form.
type Catalog struct {
	DefaultPlatform   string             `yaml:"default_platform" json:"default_platform"`
	Regions           []string           `yaml:"regions" json:"regions"`
	DeleteTypes       []string           `yaml:"delete_types" json:"delete_types"`
	GuidanceTemplates []GuidanceTemplate `yaml:"guidance_templates" json:"guidance_templates"`
}

func Default() *Catalog {
	return &Catalog{
		DefaultPlatform: domain.DefaultPlatform,
		Regions: []string{
			"湖滨区", "陕州区", "灵宝市", "义马市", "渑池县", "卢氏县", "示范区", "经开区", domain.RegionOther,
		},
		DeleteTypes: []string{"视频", "图文", "评论", "综合内容"},
		GuidanceTemplates: []GuidanceTemplate{
			{Key: "常规处置建议", Text: "近期类似情况多发，建议各县（市、区）职能部门加强对于此类现象的现场管控和线下疏导。"},
			{Key: "舆论监测建议", Text: "请各地持续加强网络舆情监测和源头排查，及时发现并妥善处置苗头性信息。"},
			{Key: "信息发布建议", Text: "各地在后续信息发布中应注意口径统一、信息准确，避免造成公众误解。"},
			{Key: "线下协调建议", Text: "请相关部门加强与属地公安、应急、交通等单位的沟通协调，确保线下稳控有力。"},
			{Key: domain.GuidanceCustom, Text: ""},
		},
	}
}

// Load returns the defaults overlaid with whatever lists the YAML file at
// path sets. A blank path or a missing file yields the defaults.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cat, nil
		}
		return nil, fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse %s: %w", path, err)
	}

	if override.DefaultPlatform != "" {
		cat.DefaultPlatform = override.DefaultPlatform
	}
	if len(override.Regions) > 0 {
		cat.Regions = override.Regions
	}
	if len(override.DeleteTypes) > 0 {
		cat.DeleteTypes = override.DeleteTypes
	}
	if len(override.GuidanceTemplates) > 0 {
		cat.GuidanceTemplates = override.GuidanceTemplates
	}
	return cat, nil
}

func (c *Catalog) HasRegion(region string) bool {
	return contains(c.Regions, region)
}

func (c *Catalog) HasDeleteType(t string) bool {
	return contains(c.DeleteTypes, t)
}

// Guidance resolves a template key. The custom key resolves to an empty text.
func (c *Catalog) Guidance(key string) (string, bool) {
	for _, g := range c.GuidanceTemplates {
		if g.Key == key {
			return g.Text, true
		}
	}
	return "", false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
