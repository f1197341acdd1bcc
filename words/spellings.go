package words

// britishToAmerican maps British spellings to the American spellings used
// by the vector vocabulary, so players can guess either.
var britishToAmerican = map[string]string{
	"accessorise": "accessorize",
	"aeroplane":   "airplane",
	"analyse":     "analyze",
	"apologise":   "apologize",
	"armour":      "armor",
	"behaviour":   "behavior",
	"calibre":     "caliber",
	"catalogue":   "catalog",
	"centre":      "center",
	"colour":      "color",
	"defence":     "defense",
	"dialogue":    "dialog",
	"favour":      "favor",
	"favourite":   "favorite",
	"fibre":       "fiber",
	"flavour":     "flavor",
	"grey":        "gray",
	"harbour":     "harbor",
	"honour":      "honor",
	"humour":      "humor",
	"jewellery":   "jewelry",
	"labour":      "labor",
	"licence":     "license",
	"litre":       "liter",
	"metre":       "meter",
	"mould":       "mold",
	"neighbour":   "neighbor",
	"odour":       "odor",
	"offence":     "offense",
	"organise":    "organize",
	"plough":      "plow",
	"practise":    "practice",
	"realise":     "realize",
	"recognise":   "recognize",
	"rumour":      "rumor",
	"sabre":       "saber",
	"saviour":     "savior",
	"splendour":   "splendor",
	"theatre":     "theater",
	"travelled":   "traveled",
	"tyre":        "tire",
	"vapour":      "vapor",
	"vigour":      "vigor",
}

// Americanize returns the American spelling of a word, or the word itself
// if no alternate spelling is known.
func Americanize(word string) string {
	if american, ok := britishToAmerican[word]; ok {
		return american
	}
	return word
}
