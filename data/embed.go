// Package data embeds the vocabulary asset shared by the number packages.
package data

import _ "embed"

// EnglishVocab is the base English number vocabulary in YAML.
//
//go:embed english.yaml
var EnglishVocab []byte
