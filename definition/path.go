package definition

import (
	"path/filepath"
	"strings"
	"unicode"
)

const (
	// DefaultFolder is the folder searched for definition files when
	// no folder path is configured.
	DefaultFolder = "models"
	// DefaultSuffix is the suffix appended to the default definition
	// file name.
	DefaultSuffix = ".json"
)

// FileName returns the default definition file name for a model:
// the kebab-cased model name with the default suffix, e.g.
// "AccessToken" -> "access-token.json".
func FileName(model string) string {
	return strings.Join(splitWords(model), "-") + DefaultSuffix
}

// splitWords splits a model name into lowercase words at camelCase
// boundaries. A run of consecutive capitals is one word, with its last
// capital starting the next word when a lowercase letter follows:
// "ACL" -> [acl], "OAuthClientApplication" -> [o, auth, client,
// application].
func splitWords(name string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	rs := []rune(name)
	for i, r := range rs {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			prevUpper := i > 0 && unicode.IsUpper(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if !prevUpper || nextLower {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// Resolve returns the definition file path for a model. An explicit
// filePath wins outright; otherwise the path is composed from
// folderPath (default "models") and fileName (default: kebab-cased
// model name plus ".json").
func Resolve(model, filePath, folderPath, fileName string) string {
	if filePath != "" {
		return filePath
	}
	if folderPath == "" {
		folderPath = DefaultFolder
	}
	if fileName == "" {
		fileName = FileName(model)
	}
	return filepath.Join(folderPath, fileName)
}
