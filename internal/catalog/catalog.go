// Package catalog loads the static widget catalogs: the entities offered by
// the lineage sidebar and the counters of the asset stats panel.
//
// The catalogs are declared in CUE. schema.cue constrains them (known
// search indexes, known count fields, absolute hrefs) and defaults.cue holds
// the built-in lists. A deployment may replace the lists with its own CUE
// package via LoadDir; it is unified with the same schema.
package catalog

import (
	"embed"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

//go:embed schema.cue defaults.cue
var cueFS embed.FS

// LineageEntity is an entity kind that can be dragged onto the lineage
// canvas.
type LineageEntity struct {
	Type  string `json:"type"`  // search index
	Label string `json:"label"` // lower-case singular, e.g. "table"
}

// StatCounter is one counter of the asset stats panel.
type StatCounter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count string `json:"count"` // EntitiesCount JSON field
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

// Catalog holds every widget catalog.
type Catalog struct {
	Lineage []LineageEntity `json:"lineage"`
	Stats   []StatCounter   `json:"stats"`
}

// ErrDuplicateID is returned when two stat counters share an id.
var ErrDuplicateID = errors.New("catalog: duplicate stat counter id")

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	src, err := cueFS.ReadFile("defaults.cue")
	if err != nil {
		return nil, fmt.Errorf("reading defaults.cue: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename("defaults.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling defaults.cue: %w", err)
	}
	return decode(ctx, v)
}

// MustDefault is Default for package initialisation and tests. The embedded
// catalog is validated by the package tests, so a failure here is a build
// defect.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadDir loads the CUE package in dir and validates it against the schema.
func LoadDir(dir string) (*Catalog, error) {
	insts := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(insts) == 0 {
		return nil, fmt.Errorf("no CUE instances found in %s", dir)
	}
	if insts[0].Err != nil {
		return nil, fmt.Errorf("loading catalog CUE: %w", insts[0].Err)
	}
	ctx := cuecontext.New()
	v := ctx.BuildInstance(insts[0])
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("building catalog CUE value: %w", err)
	}
	return decode(ctx, v)
}

// decode unifies v with #Catalog, requires it to be concrete and decodes it.
func decode(ctx *cue.Context, v cue.Value) (*Catalog, error) {
	src, err := cueFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading schema.cue: %w", err)
	}
	schema := ctx.CompileBytes(src, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema.cue: %w", err)
	}

	v = schema.LookupPath(cue.ParsePath("#Catalog")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}

	var c Catalog
	if err := v.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Stats))
	for _, s := range c.Stats {
		if seen[s.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
