package catalog

import (
	"strings"

	"github.com/estoque/backend/internal/domain/shared"
)

// Material is an immutable catalog entry for a trackable material type.
type Material struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewMaterial creates a material after validating its fields.
func NewMaterial(id, name string) (Material, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Material{}, shared.NewDomainError("INVALID_MATERIAL", "Material ID cannot be empty")
	}
	if name == "" {
		return Material{}, shared.NewDomainError("INVALID_MATERIAL", "Material name cannot be empty")
	}
	return Material{ID: id, Name: name}, nil
}

// Catalog is the fixed, ordered set of trackable materials.
// It is loaded at startup and never mutated.
type Catalog struct {
	materials []Material
	index     map[string]int
}

// NewCatalog builds a catalog from an ordered material list.
// Duplicate IDs and empty catalogs are rejected.
func NewCatalog(materials []Material) (*Catalog, error) {
	if len(materials) == 0 {
		return nil, shared.NewDomainError("EMPTY_CATALOG", "Catalog must contain at least one material")
	}

	index := make(map[string]int, len(materials))
	items := make([]Material, 0, len(materials))
	for _, m := range materials {
		validated, err := NewMaterial(m.ID, m.Name)
		if err != nil {
			return nil, err
		}
		if _, exists := index[validated.ID]; exists {
			return nil, shared.NewDomainError("DUPLICATE_MATERIAL", "Duplicate material ID: "+validated.ID)
		}
		index[validated.ID] = len(items)
		items = append(items, validated)
	}

	return &Catalog{materials: items, index: index}, nil
}

// Materials returns all materials in catalog order.
func (c *Catalog) Materials() []Material {
	out := make([]Material, len(c.materials))
	copy(out, c.materials)
	return out
}

// Get returns the material with the given ID.
func (c *Catalog) Get(id string) (Material, bool) {
	i, ok := c.index[id]
	if !ok {
		return Material{}, false
	}
	return c.materials[i], true
}

// Contains reports whether the catalog has a material with the given ID.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the catalog-order index of a material ID.
// Unknown IDs sort after all known ones.
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return len(c.materials)
}

// Len returns the number of materials in the catalog.
func (c *Catalog) Len() int {
	return len(c.materials)
}
