package textfile

import "github.com/hailam/pokedat/internal/ports"

// varEntry associates a 16-bit variable code with its display name.
// Declaration order matters: on duplicate names the first entry wins the
// reverse lookup.
type varEntry struct {
	code uint16
	name string
}

// gameVariables holds the per-game variable tables. Names are ASCII
// identifiers except for entries rendered literally, like the Pokédollar
// sign. The LGPE and LZA tables are complete; the others are partial.
var gameVariables = map[ports.GameVersion][]varEntry{
	ports.GameLGPE: {
		{0xFF00, "COLOR"},           // text color change
		{0x0100, "TRNAME"},          // trainer name
		{0x0101, "POKNAME"},         // Pokémon name
		{0x0102, "PKNICK"},          // Pokémon nickname
		{0x0103, "TYPE"},            // Pokémon type
		{0x0104, "SPECIES"},         // species
		{0x0105, "LOCATION"},        // location name
		{0x0106, "ABILITY"},         // ability name
		{0x0107, "MOVE"},            // move name
		{0x0108, "ITEM1"},           // item name
		{0x0109, "ITEM2"},           // item name
		{0x010B, "GERM00"},          // German-only text
		{0x010C, "PKMLVUP"},         // level-up name
		{0x010D, "EVSTAT"},          // effort value stat
		{0x010E, "TRCLASS"},         // trainer class
		{0x0110, "GERM01"},          // German-only text
		{0x0112, "BAG"},             // bag
		{0x010A, "ITEMBAG"},         // bag item
		{0x012D, "FORBIDDENCHAR"},   // forbidden character
		{0x012E, "MISTERYCAP"},      // ID information
		{0x01B0, "WBALLTYPE"},       // weather-dependent Weather Ball
		{0x01B1, "STPKM"},           // battle status
		{0x01C6, "STYLEITEM"},       // style item
		{0x01C9, "PGOTRAINER"},      // Pokémon GO player name
		{0x01C8, "SUPPORT"},         // support player
		{0x01CA, "GIFT00"},          // gift
		{0x01CB, "GOPARKLOCAL"},     // GO Park location
		{0x01CC, "GOPARKPKM"},       // GO Park Pokémon
		{0x01CE, "PKMPKEVEE"},       // version mascot name
		{0x01CD, "RIVALNAME"},       // rival name
		{0x019E, "FR|GER|SPA"},      // French/German/Spanish text
		{0x1000, "NUM0"},            // number
		{0x1001, "NUM10"},           // number
		{0x1002, "FRAITA"},          // French/Italian text
		{0x1100, "GENDBR"},          // gender-based pronoun
		{0x1101, "ITEMPLUR1"},       // plural pronoun
		{0x1102, "FRAITA01"},        // French/Italian text
		{0x1104, "GARTFR"},          // French gender article
		{0x1302, "INDEF_ART"},       // indefinite article ("a" or "an")
		{0x1303, "AMOUNT"},          // item amount
		{0x1400, "ARTFRA"},          // French article
		{0x1401, "DARTFRA"},         // French definite article
		{0x1402, "INARTFRA"},        // French indefinite article
		{0x1403, "VARFRA00"},        // French text
		{0x1404, "VARFRA01"},        // French text
		{0x1406, "VARFRA02"},        // French text
		{0x1408, "VARFRA03"},        // French text
		{0x140A, "VARFRA03"},        // French text (duplicate name in the game data)
		{0x1500, "VARITA00"},        // Italian text
		{0x1501, "VARITA01"},        // Italian text
		{0x1502, "VARITA02"},        // Italian text
		{0x1503, "VARITA03"},        // Italian text
		{0x1504, "VARITA04"},        // Italian text
		{0x1506, "VARITA05"},        // Italian text
		{0x1508, "VARITA06"},        // Italian text
		{0x150A, "VARITA07"},        // Italian text
		{0x1603, "VARGER00"},        // German text
		{0x1606, "VARGER01"},        // German text
		{0x1700, "VARESP00"},        // Spanish text
		{0x1701, "VARESP01"},        // Spanish text
		{0x1702, "VARESP02"},        // Spanish text
		{0x1704, "VARESP03"},        // Spanish text
		{0x1706, "VARESP04"},        // Spanish text
		{0x1708, "VARESP05"},        // Spanish text
		{0x1709, "VARESP06"},        // Spanish text
		{0x1900, "VARKOR00"},        // Korean text
		{0x0200, "NUM1"},            // number
		{0x0201, "NUM2"},            // number
		{0x0202, "NUM3"},            // number
		{0x0203, "NUM4"},            // number
		{0x0204, "NUM5"},            // number
		{0x0205, "NUM6"},            // number
		{0x0206, "NUM7"},            // number
		{0x0207, "NUM8"},            // number
		{0x0208, "NUM9"},            // number
		{0x0189, "UNKNOWNPOKEMON"},  // unseen Pokémon
		{0xBD03, "SYMBOL"},          // symbol
		{0xBD04, "BTLTPFX"},         // battle type prefix
		{0xBD06, "BTEFECT"},         // battle effectiveness
		{0xBE05, "SFX"},             // sound effect
		{0xE300, "₽"},               // Pokédollar sign, rendered literally
	},
	ports.GameSWSH: {
		{0xFF00, "COLOR"},
	},
	ports.GameLA: {
		{0xFF00, "COLOR"},
	},
	ports.GameSV: {
		{0xFF00, "COLOR"},
	},
	ports.GameLZA: {
		{0xFF00, "COLOR"},    // text color change
		{0x0100, "TRNAME"},   // trainer name
		{0x0101, "POKNAME"},  // Pokémon name
		{0x0102, "PKNICK"},   // Pokémon nickname
		{0x0103, "TYPE"},     // Pokémon type
		{0x0104, "SPECIES"},  // species
		{0x0105, "LOCATION"}, // location name
		{0x0106, "ABILITY"},  // ability name
		{0x0107, "MOVE"},     // move name
		{0x0108, "ITEM1"},    // item name
		{0x0109, "ITEM2"},    // item name
		{0xE300, "₽"},        // Pokédollar sign, rendered literally
		{0x1100, "GENDBR"},   // gender-based pronoun
	},
}
