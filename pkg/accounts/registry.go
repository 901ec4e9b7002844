package accounts

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobwas/glob"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Definition declares one financial account and the signals that map an
// inbound transaction onto it. Loaded once at startup, immutable afterwards.
type Definition struct {
	ID               string   `mapstructure:"id"`
	Label            string   `mapstructure:"label"`
	Icon             string   `mapstructure:"icon"`
	PackageIDs       []string `mapstructure:"package_ids"`
	Keywords         []string `mapstructure:"keywords"`
	MerchantPatterns []string `mapstructure:"merchant_patterns"`
	DefaultCategory  string   `mapstructure:"default_category"`

	globs []glob.Glob
}

// MatchesMerchant reports whether merchant matches any of the definition's
// glob patterns. Matching is case-insensitive and anchored to the full string.
func (d *Definition) MatchesMerchant(merchant string) bool {
	merchant = strings.ToLower(strings.TrimSpace(merchant))
	if merchant == "" {
		return false
	}

	for _, g := range d.globs {
		if g.Match(merchant) {
			return true
		}
	}

	return false
}

func (d *Definition) compile() error {
	for _, pattern := range d.MerchantPatterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return errors.Wrapf(err, "account %s: bad merchant pattern %q", d.ID, pattern)
		}

		d.globs = append(d.globs, g)
	}

	return nil
}

type Registry struct {
	defs      []*Definition
	byID      map[string]*Definition
	byPackage map[string]*Definition
}

func NewRegistry(defs []*Definition) (*Registry, error) {
	r := &Registry{
		defs:      defs,
		byID:      map[string]*Definition{},
		byPackage: map[string]*Definition{},
	}

	for _, def := range defs {
		if def.ID == "" {
			return nil, errors.Newf("account %q has no id", def.Label)
		}

		if _, ok := r.byID[def.ID]; ok {
			return nil, errors.Newf("duplicate account id %s", def.ID)
		}

		if err := def.compile(); err != nil {
			return nil, err
		}

		r.byID[def.ID] = def
		for _, pkg := range def.PackageIDs {
			r.byPackage[strings.ToLower(pkg)] = def
		}
	}

	return r, nil
}

// LoadRegistry reads account definitions from the "accounts" key of a
// YAML configuration file.
func LoadRegistry(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read accounts config")
	}

	var defs []*Definition
	if err := v.UnmarshalKey("accounts", &defs); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal accounts config")
	}

	if len(defs) == 0 {
		return nil, errors.New("accounts config defines no accounts")
	}

	return NewRegistry(defs)
}

// All returns definitions in declaration order.
func (r *Registry) All() []*Definition {
	return r.defs
}

func (r *Registry) ByID(id string) (*Definition, bool) {
	def, ok := r.byID[id]
	return def, ok
}

func (r *Registry) ByPackageID(packageID string) (*Definition, bool) {
	def, ok := r.byPackage[strings.ToLower(packageID)]
	return def, ok
}

func (r *Registry) IDs() []string {
	return lo.Map(r.defs, func(d *Definition, _ int) string {
		return d.ID
	})
}
