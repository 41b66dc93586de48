package services

import "strings"

// blockedWords is the fixed word filter applied to comment bodies and author
// names, covering English and Turkish terms. Matching is token-exact after
// lowercasing, so ordinary words that merely embed a blocked term pass.
var blockedWords = map[string]struct{}{
	"fuck": {}, "fucking": {}, "shit": {}, "bitch": {}, "asshole": {},
	"bastard": {}, "dick": {}, "cunt": {}, "whore": {}, "slut": {},
	"amk": {}, "aq": {}, "mk": {}, "orospu": {}, "piç": {}, "pic": {},
	"sik": {}, "sikerim": {}, "siktir": {}, "yarrak": {}, "göt": {},
	"amcık": {}, "amcik": {}, "pezevenk": {}, "kahpe": {}, "ibne": {},
	"salak": {}, "gerizekalı": {}, "gerizekali": {}, "mal": {},
}

// ContainsProfanity reports whether any token of s is on the blocked list.
// Tokens are maximal runs of letters or digits; everything else separates.
func ContainsProfanity(s string) bool {
	for _, tok := range tokenize(strings.ToLower(s)) {
		if _, bad := blockedWords[tok]; bad {
			return true
		}
	}
	return false
}

func tokenize(s string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range s {
		if isWordRune(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	// Turkish lowercase letters outside ASCII.
	switch r {
	case 'ç', 'ğ', 'ı', 'i', 'ö', 'ş', 'ü':
		return true
	}
	return r > 127 && !strings.ContainsRune(" \t\n\r.,!?;:'\"()[]{}<>/\\|-_=+*&^%$#@~`", r)
}
