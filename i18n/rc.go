// Package i18n provides translations loaded from Windows RC files,
// plus the &-hotkey conventions menu labels use.
package i18n

import (
	"regexp"
	"strconv"
	"strings"
)

// The RC grammar is line oriented: MENU / DIALOG(EX) / STRINGTABLE
// resources hold BEGIN..END blocks of quoted strings.
var (
	reSpaces  = regexp.MustCompile(`[\t ]+`)
	reComment = regexp.MustCompile(`//.*$`)
	reDialog  = regexp.MustCompile(`^(\w+) (DIALOG|DIALOGEX) `)
	reCaption = regexp.MustCompile(`^[\t ]*CAPTION[\t ]+(L?"(.*?("")*)*?")`)
	reItem    = regexp.MustCompile(`^[\t ]*(\w+)[\t ]+(L?"([^"]*?("")*)*?")`)
	reString  = regexp.MustCompile(`(L?"(.*)")`)
	reWideEsc = regexp.MustCompile(`\\x([0-9a-fA-F]{4})`)
	reUnquote = regexp.MustCompile(`^L?"(.*)"$`)
)

// ParseRC extracts every translatable string from RC file text, in file
// order. Order matters: translations are paired with the base language
// by index.
func ParseRC(text string) []string {
	var strs []string

	menu := false
	dialog := false
	blockLevel := 0

	for _, line := range strings.Split(text, "\n") {
		normLine := reSpaces.ReplaceAllString(strings.TrimSpace(line), " ")
		normLine = reComment.ReplaceAllString(normLine, "")

		if strings.HasSuffix(normLine, " MENU") {
			menu = true
		}
		if reDialog.MatchString(normLine) {
			dialog = true
		}
		if normLine == "BEGIN" {
			blockLevel++
		}
		if normLine == "END" {
			blockLevel--
			if blockLevel <= 0 {
				blockLevel = 0
				menu, dialog = false, false
			}
		}

		orig := ""
		switch {
		case dialog && blockLevel == 0:
			// CAPTION sits between the DIALOG header and BEGIN
			if m := reCaption.FindStringSubmatch(line); m != nil {
				orig = m[1]
			}
		case (menu || dialog) && blockLevel > 0:
			// MENUITEM/control lines: keyword then quoted label
			if m := reItem.FindStringSubmatch(line); m != nil {
				orig = m[2]
			}
		default:
			// STRINGTABLE entries and loose strings
			if m := reString.FindStringSubmatch(line); m != nil {
				orig = m[1]
			}
		}

		if orig != "" {
			strs = append(strs, unquoteRC(orig))
		}
	}
	return strs
}

// unquoteRC strips the quotes and decodes RC escapes. Wide strings
// (L"...") additionally carry \xNNNN code-unit escapes.
func unquoteRC(s string) string {
	wide := strings.HasPrefix(s, "L")
	s = reUnquote.ReplaceAllString(s, "$1")
	s = strings.NewReplacer(
		`\r`, "\r",
		`\n`, "\n",
		`\t`, "\t",
		`\"`, `"`,
		`""`, `"`,
	).Replace(s)
	if wide {
		s = reWideEsc.ReplaceAllStringFunc(s, func(m string) string {
			n, err := strconv.ParseUint(m[2:], 16, 32)
			if err != nil {
				return m
			}
			return string(rune(n))
		})
	}
	return s
}
