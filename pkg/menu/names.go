package menu

// Canonical short names for the Karlsruhe cafeterias, mapped to the full
// names used on the upstream menu page. Requests address cafeterias by any
// unambiguous prefix of the short name.
var Shortnames = map[string]string{
	"Adenauerring":        "Mensa Am Adenauerring",
	"Erzbergerstraße":     "Mensa Erzbergerstraße",
	"Holzgartenstraße":    "Mensa Holzgartenstraße",
	"Moltkestraße":        "Mensa Moltke",
	"Gottesaue":           "Mensa Schloss Gottesaue",
	"Tiefenbronnerstraße": "Mensa Tiefenbronnerstraße",
}

// DefaultMensa is served for requests that do not name a cafeteria.
const DefaultMensa = "Mensa Am Adenauerring"

// IconTags maps upstream meal icon file names to dietary tag labels.
var IconTags = map[string]string{
	"vegetarian_2.gif": "veggi",
	"vegan_2.gif":      "vegan",
	"s_2.gif":          "schwein",
	"r_2.gif":          "rind",
	"m_2.gif":          "fisch",
	"bio_2.gif":        "bio",
}
