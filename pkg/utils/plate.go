package utils

import (
	"regexp"
	"strings"
)

// PlateFormat describes one Tanzanian plate category.
type PlateFormat struct {
	Tag         string
	Description string
	pattern     *regexp.Regexp
}

// Ordered: the first matching category wins.
var plateFormats = []PlateFormat{
	{"private", "ABC-1234 (e.g., TBA-1234)", regexp.MustCompile(`^[A-Z]{3} \d{4}$`)},
	{"commercial", "T-123-ABC (e.g., T-456-XYZ)", regexp.MustCompile(`^T \d{3} [A-Z]{3}$`)},
	{"government", "SU-1234 (e.g., SU-5678)", regexp.MustCompile(`^SU \d{4}$`)},
	{"diplomatic", "CD-1234 or CMD-1234 (e.g., CD-5678)", regexp.MustCompile(`^(CD|CMD) \d{4}$`)},
	{"parastatal", "STK-1234 (e.g., STK-5678)", regexp.MustCompile(`^STK \d{4}$`)},
	{"police", "PT-1234 (e.g., PT-7890)", regexp.MustCompile(`^PT \d{4}$`)},
	{"military", "MT-1234 (e.g., MT-3456)", regexp.MustCompile(`^MT \d{4}$`)},
	{"motorcycle", "MC-123-ABC (e.g., MC-456-XYZ)", regexp.MustCompile(`^MC \d{3} [A-Z]{3}$`)},
	{"temporary", "T1234 or T-123-ABC (e.g., T4567, T-123-ABC)", regexp.MustCompile(`^T\d{4}$|^T \d{3} [A-Z]{3}$`)},
	{"personalized", "CUSTOM NAME/NUMBER (e.g., KWYUNG1)", regexp.MustCompile(`^[A-Z0-9]{1,8}$`)},
	{"ngo", "U-123-ABC (e.g., U-789-XYZ)", regexp.MustCompile(`^U \d{3} [A-Z]{3}$`)},
	{"transit", "T-1234-EX (e.g., T-5678-EX)", regexp.MustCompile(`^T \d{4} EX$`)},
	{"diplomatic_temp", "CDT-1234 (e.g., CDT-4321)", regexp.MustCompile(`^CDT \d{4}$`)},
	{"dealer", "D-1234-ABC (e.g., D-6789-XYZ)", regexp.MustCompile(`^D \d{4} [A-Z]{3}$`)},
}

var plateSpaces = regexp.MustCompile(`\s+`)

// ValidatePlate normalizes a plate number and matches it against the known
// categories. Returns the hyphenated canonical form, the category tag, and
// whether any category matched.
func ValidatePlate(raw string) (string, string, bool) {
	plate := strings.ToUpper(strings.TrimSpace(raw))
	plate = strings.ReplaceAll(plate, "-", " ")
	plate = plateSpaces.ReplaceAllString(plate, " ")

	for _, format := range plateFormats {
		if format.pattern.MatchString(plate) {
			return strings.ReplaceAll(plate, " ", "-"), format.Tag, true
		}
	}

	return "", "", false
}

// PlateFormats returns the supported categories and their expected formats.
func PlateFormats() map[string]string {
	formats := make(map[string]string, len(plateFormats))
	for _, format := range plateFormats {
		formats[format.Tag] = format.Description
	}
	return formats
}
