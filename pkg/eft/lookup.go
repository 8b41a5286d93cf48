package eft

import "fmt"

// FingerPosition describes one FGP code: the display name and the slug used
// for export filenames and command-line aliases.
type FingerPosition struct {
	Name string
	Slug string
}

// fingerPositions maps the Type-4 FGP byte to its label. Codes 1..10 are
// rolled impressions, 11..14 plain impressions.
var fingerPositions = map[int]FingerPosition{
	1:  {Name: "Right thumb", Slug: "right-thumb"},
	2:  {Name: "Right index", Slug: "right-index"},
	3:  {Name: "Right middle", Slug: "right-middle"},
	4:  {Name: "Right ring", Slug: "right-ring"},
	5:  {Name: "Right little", Slug: "right-little"},
	6:  {Name: "Left thumb", Slug: "left-thumb"},
	7:  {Name: "Left index", Slug: "left-index"},
	8:  {Name: "Left middle", Slug: "left-middle"},
	9:  {Name: "Left ring", Slug: "left-ring"},
	10: {Name: "Left little", Slug: "left-little"},
	11: {Name: "Plain right thumb", Slug: "plain-right-thumb"},
	12: {Name: "Plain left thumb", Slug: "plain-left-thumb"},
	13: {Name: "Plain right four", Slug: "plain-right-four"},
	14: {Name: "Plain left four", Slug: "plain-left-four"},
}

// fingerAliases maps normalized position names ("right_thumb") to codes.
var fingerAliases = func() map[string]int {
	aliases := make(map[string]int, len(fingerPositions))
	for code, fp := range fingerPositions {
		key := ""
		for _, r := range fp.Slug {
			if r == '-' {
				r = '_'
			}
			key += string(r)
		}
		aliases[key] = code
	}
	return aliases
}()

// impressionNames maps the Type-4 impression type byte to its label.
var impressionNames = map[int]string{
	0: "Live-scan plain",
	1: "Live-scan rolled",
	2: "Nonlive-scan plain",
	3: "Nonlive-scan rolled",
	4: "Latent impression",
	5: "Latent tracing",
	6: "Latent photo",
	7: "Latent lift",
}

// compressionNames maps the Type-4 compression byte to its label.
var compressionNames = map[int]string{
	0: "Uncompressed",
	1: "WSQ",
	2: "JPEG",
	3: "JPEG Lossless",
	4: "JPEG 2000",
	5: "JPEG 2000 Lossless",
	6: "PNG",
}

// Demographic code labels (NCIC code sets).

var sexNames = map[string]string{
	"M": "Male",
	"F": "Female",
	"X": "Unknown",
}

var raceNames = map[string]string{
	"A": "Asian",
	"B": "Black",
	"I": "American Indian",
	"U": "Unknown",
	"W": "White",
}

var eyeColorNames = map[string]string{
	"BLK": "Black",
	"BLU": "Blue",
	"BRO": "Brown",
	"GRN": "Green",
	"GRY": "Gray",
	"HAZ": "Hazel",
	"MAR": "Maroon",
	"MUL": "Multicolored",
	"PNK": "Pink",
	"XXX": "Unknown",
}

var hairColorNames = map[string]string{
	"BAL": "Bald",
	"BLK": "Black",
	"BLN": "Blond",
	"BRO": "Brown",
	"GRY": "Gray",
	"RED": "Red",
	"SDY": "Sandy",
	"WHI": "White",
	"XXX": "Unknown",
}

// FingerPositionName resolves an FGP code to its display name, falling
// back to "Unknown (N)".
func FingerPositionName(code int) string {
	if fp, ok := fingerPositions[code]; ok {
		return fp.Name
	}
	return fmt.Sprintf("Unknown (%d)", code)
}

// ImpressionTypeName resolves an impression type byte to its label, falling
// back to "Unknown (N)".
func ImpressionTypeName(code int) string { return labelOr(impressionNames, code) }

// CompressionAlgorithmName resolves a compression byte to its label,
// falling back to "Unknown (N)".
func CompressionAlgorithmName(code int) string { return labelOr(compressionNames, code) }

// SexName resolves a Type-2 sex code to its label, or returns the code.
func SexName(code string) string { return codeOr(sexNames, code) }

// RaceName resolves a Type-2 race code to its label, or returns the code.
func RaceName(code string) string { return codeOr(raceNames, code) }

// EyeColorName resolves an NCIC eye color code, or returns the code.
func EyeColorName(code string) string { return codeOr(eyeColorNames, code) }

// HairColorName resolves an NCIC hair color code, or returns the code.
func HairColorName(code string) string { return codeOr(hairColorNames, code) }

func codeOr(table map[string]string, code string) string {
	if name, ok := table[code]; ok {
		return name
	}
	return code
}
