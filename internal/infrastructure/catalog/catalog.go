package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"rodnan-bot/internal/domain/entity"
)

//go:embed catalog.yaml
var catalogYAML []byte

type regionDoc struct {
	ID    string            `yaml:"id"`
	X     float64           `yaml:"x"`
	Y     float64           `yaml:"y"`
	Names map[string]string `yaml:"names"`
}

type optionDoc struct {
	Score int    `yaml:"score"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

type messagesDoc struct {
	Heading string `yaml:"heading"`
	Hint    string `yaml:"hint"`
	Pick    string `yaml:"pick"`
	Total   string `yaml:"total"`
	Action  string `yaml:"action"`
	Reset   string `yaml:"reset"`
	Saved   string `yaml:"saved"`
}

type variantDoc struct {
	Locale        string      `yaml:"locale"`
	Default       int         `yaml:"default"`
	UnscoredColor string      `yaml:"unscored_color"`
	Action        string      `yaml:"action"`
	Options       []optionDoc `yaml:"options"`
	Messages      messagesDoc `yaml:"messages"`
}

type document struct {
	Regions  []regionDoc           `yaml:"regions"`
	Variants map[string]variantDoc `yaml:"variants"`
}

// Catalog статический каталог областей и шкал оценок
type Catalog struct {
	doc document
}

// Default разбирает встроенный каталог.
func Default() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse разбирает каталог из YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Regions) == 0 {
		return nil, fmt.Errorf("%w: catalog has no regions", entity.ErrInvalidCatalog)
	}
	return &Catalog{doc: doc}, nil
}

// Keys возвращает ключи вариантов по алфавиту.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.doc.Variants))
	for k := range c.doc.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load возвращает вариант и области с подписями на его языке.
func (c *Catalog) Load(key string) (entity.Variant, []entity.Region, error) {
	vd, ok := c.doc.Variants[key]
	if !ok {
		return entity.Variant{}, nil, fmt.Errorf("unknown variant %q (known: %v)", key, c.Keys())
	}

	variant := entity.Variant{
		Key:           key,
		Locale:        vd.Locale,
		DefaultScore:  vd.Default,
		UnscoredColor: vd.UnscoredColor,
		Action:        entity.Action(vd.Action),
		Options:       make([]entity.ScoreOption, 0, len(vd.Options)),
		Messages: entity.Messages{
			Heading:     vd.Messages.Heading,
			Hint:        vd.Messages.Hint,
			PickPrompt:  vd.Messages.Pick,
			TotalLabel:  vd.Messages.Total,
			ActionLabel: vd.Messages.Action,
			ResetDone:   vd.Messages.Reset,
			Saved:       vd.Messages.Saved,
		},
	}
	for _, o := range vd.Options {
		variant.Options = append(variant.Options, entity.ScoreOption{
			Score: o.Score,
			Label: o.Label,
			Color: o.Color,
		})
	}
	if err := variant.Validate(); err != nil {
		return entity.Variant{}, nil, err
	}

	regions := make([]entity.Region, 0, len(c.doc.Regions))
	for _, rd := range c.doc.Regions {
		name := rd.Names[vd.Locale]
		if name == "" {
			name = rd.ID
		}
		regions = append(regions, entity.Region{
			ID:       rd.ID,
			Name:     name,
			Position: entity.Position{X: rd.X, Y: rd.Y},
		})
	}

	return variant, regions, nil
}
