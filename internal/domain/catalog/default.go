package catalog

// Default returns the built-in material catalog used when no external
// catalog is configured.
func Default() *Catalog {
	c, err := NewCatalog([]Material{
		{ID: "alca-branca", Name: "Alça Branca"},
		{ID: "alca-vermelha", Name: "Alça Vermelha"},
		{ID: "alca-azul", Name: "Alça Azul"},
		{ID: "alca-preta", Name: "Alça Preta"},
		{ID: "bape-02", Name: "Bape 02"},
		{ID: "bape-03", Name: "Bape 03"},
		{ID: "olhal-galv", Name: "Olhal Galvanizado"},
		{ID: "olhal-reto", Name: "Olhal Reto"},
		{ID: "parafuso", Name: "Parafuso"},
		{ID: "espina", Name: "Espina"},
		{ID: "plaqueta", Name: "Plaqueta"},
		{ID: "supa", Name: "Supa"},
		{ID: "fo-1", Name: "F.O."},
		{ID: "fo-2", Name: "F.O. (segunda linha)"},
	})
	if err != nil {
		panic("invalid built-in catalog: " + err.Error())
	}
	return c
}
