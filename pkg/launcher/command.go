// Package launcher builds platform launch commands from templates and runs
// the resulting game process, reporting its lifecycle.
package launcher

import (
	"path/filepath"
	"strings"
)

// Placeholder tokens recognized in platform launch command templates.
// %ROM% and %ROM_RAW% are synonyms for the sanitized rom path.
const (
	PlaceholderRom      = "%ROM%"
	PlaceholderRomRaw   = "%ROM_RAW%"
	PlaceholderBasename = "%BASENAME%"
)

var whitespaceChars = " \t\n\v\f\r"

// sanitizeValue escapes a value for safe inclusion in a launch command string.
// Literal quotes are represented by triple quotes; values containing spaces
// must be quoted. Escaping always runs before the whitespace check.
func sanitizeValue(value string) string {
	value = strings.ReplaceAll(value, `"`, `"""`)
	if strings.ContainsAny(value, whitespaceChars) {
		value = `"` + value + `"`
	}
	return value
}

// Basename strips the directory and the last extension from a rom path,
// e.g. /games/foo.tar.gz -> foo.tar
func Basename(romPath string) string {
	base := filepath.Base(romPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BuildCommand substitutes the known placeholders in a launch command
// template with sanitized values derived from the rom path.
//
// Manually quoted placeholders ("%ROM%") are replaced before the bare forms;
// replacing the bare forms first would corrupt an already-quoted placeholder
// when the value itself needs quoting.
func BuildCommand(template, romPath string) string {
	path := sanitizeValue(romPath)
	basename := sanitizeValue(Basename(romPath))

	cmd := template
	cmd = strings.ReplaceAll(cmd, `"`+PlaceholderRom+`"`, path)
	cmd = strings.ReplaceAll(cmd, `"`+PlaceholderRomRaw+`"`, path)
	cmd = strings.ReplaceAll(cmd, `"`+PlaceholderBasename+`"`, basename)

	cmd = strings.ReplaceAll(cmd, PlaceholderRom, path)
	cmd = strings.ReplaceAll(cmd, PlaceholderRomRaw, path)
	cmd = strings.ReplaceAll(cmd, PlaceholderBasename, basename)

	return cmd
}
