package lexicon

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Harshitk-cp/cuibono/internal/codec"
)

// DefaultName is the lexicon used when none is configured.
const DefaultName = "en"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// BuiltinNames lists the embedded lexicons.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Builtin loads an embedded lexicon by name.
func Builtin(name string) (*Lexicon, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownLexicon, name, strings.Join(BuiltinNames(), ", "))
	}
	var t Tables
	if err := codec.Decode(data, codec.FormatYAML, &t); err != nil {
		return nil, fmt.Errorf("decode built-in lexicon %q: %w", name, err)
	}
	return New(t)
}

// Default returns the built-in English lexicon.
func Default() *Lexicon {
	l, err := Builtin(DefaultName)
	if err != nil {
		panic(fmt.Sprintf("built-in lexicon %q: %v", DefaultName, err))
	}
	return l
}

// Load accepts either a built-in name or a path to a YAML, TOML or JSON
// lexicon file.
func Load(nameOrPath string) (*Lexicon, error) {
	if nameOrPath == "" {
		return Builtin(DefaultName)
	}
	if _, err := codec.FormatFromPath(nameOrPath); err != nil {
		return Builtin(nameOrPath)
	}
	var t Tables
	if err := codec.DecodeFile(nameOrPath, &t); err != nil {
		return nil, err
	}
	if t.Name == "" {
		t.Name = filepath.Base(nameOrPath)
	}
	return New(t)
}
