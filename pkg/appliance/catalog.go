package appliance

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/raterudder/solarcalc/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CategoryAll matches every catalog item.
const CategoryAll = "all"

type templateItem struct {
	Title    string  `yaml:"title"`
	Quantity int     `yaml:"quantity"`
	Wattage  float64 `yaml:"wattage"`
	Hours    float64 `yaml:"hours"`
}

type assistiveTier struct {
	MinBedrooms int            `yaml:"minBedrooms"`
	Appliances  []templateItem `yaml:"appliances"`
}

type catalogFile struct {
	Appliances        []types.CatalogItem `yaml:"appliances"`
	StandardTemplates struct {
		Common   []templateItem         `yaml:"common"`
		Bedrooms map[int][]templateItem `yaml:"bedrooms"`
	} `yaml:"standardTemplates"`
	AssistiveTemplates []assistiveTier `yaml:"assistiveTemplates"`
}

// Catalog is the immutable set of appliances a user can pick from along with
// the household templates built out of them.
type Catalog struct {
	items   []types.CatalogItem
	byTitle map[string]types.CatalogItem

	common    []templateItem
	bedrooms  map[int][]templateItem
	assistive []assistiveTier
}

// ParseCatalog parses a YAML catalog document.
func ParseCatalog(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c := &Catalog{
		items:     f.Appliances,
		byTitle:   make(map[string]types.CatalogItem, len(f.Appliances)),
		common:    f.StandardTemplates.Common,
		bedrooms:  f.StandardTemplates.Bedrooms,
		assistive: f.AssistiveTemplates,
	}
	for _, item := range f.Appliances {
		if item.Title == "" {
			return nil, fmt.Errorf("catalog item missing title")
		}
		if _, ok := c.byTitle[item.Title]; ok {
			return nil, fmt.Errorf("duplicate catalog item: %s", item.Title)
		}
		c.byTitle[item.Title] = item
	}
	sort.SliceStable(c.assistive, func(i, j int) bool {
		return c.assistive[i].MinBedrooms < c.assistive[j].MinBedrooms
	})
	return c, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns every catalog item in catalog order.
func (c *Catalog) Items() []types.CatalogItem {
	return append([]types.CatalogItem(nil), c.items...)
}

// Lookup returns the item with the given title.
func (c *Catalog) Lookup(title string) (types.CatalogItem, bool) {
	item, ok := c.byTitle[title]
	return item, ok
}

// Filter returns the items in category. CategoryAll and the empty string
// return everything.
func (c *Catalog) Filter(category string) []types.CatalogItem {
	if category == "" || category == CategoryAll {
		return c.Items()
	}
	var out []types.CatalogItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Search returns the items whose title contains term, ignoring case.
func (c *Catalog) Search(term string) []types.CatalogItem {
	term = strings.ToLower(term)
	var out []types.CatalogItem
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Title), term) {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
