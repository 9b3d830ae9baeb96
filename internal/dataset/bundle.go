package dataset

import (
	"github.com/poku-e/MopacAssistant/internal/logger"
)

// Kind names one of the three datasets.
type Kind string

const (
	KindElements Kind = "elements"
	KindMethods  Kind = "methods"
	KindKeywords Kind = "keywords"
)

// Paths locates the three dataset files.
type Paths struct {
	Elements string
	Methods  string
	Keywords string
}

// Problem records why a dataset is unavailable.
type Problem struct {
	Dataset Kind
	Path    string
	Err     error
}

// Reason is a short classification of Err for users.
func (p Problem) Reason() string {
	switch {
	case IsFileNotFound(p.Err):
		return "file not found"
	case IsParseError(p.Err):
		return "invalid data"
	default:
		return "unreadable"
	}
}

// Bundle is everything loaded at startup. A dataset that failed to load is
// nil and has an entry in Problems; the others are unaffected.
type Bundle struct {
	Elements *Directory
	Methods  *MethodIndex
	Keywords *Glossary
	Problems []Problem
}

// LoadBundle loads each dataset independently and never fails. Every load
// problem is logged once here.
func LoadBundle(paths Paths) *Bundle {
	log := logger.Named("dataset")
	b := &Bundle{}

	record := func(kind Kind, path string, err error) {
		p := Problem{Dataset: kind, Path: path, Err: err}
		b.Problems = append(b.Problems, p)
		log.Warnw("dataset unavailable", "dataset", kind, "path", path, "reason", p.Reason(), "error", err)
	}

	if d, err := LoadElements(paths.Elements); err != nil {
		record(KindElements, paths.Elements, err)
	} else {
		b.Elements = d
		log.Infow("dataset loaded", "dataset", KindElements, "path", paths.Elements, "records", d.Len())
	}

	if m, err := LoadMethods(paths.Methods); err != nil {
		record(KindMethods, paths.Methods, err)
	} else {
		b.Methods = m
		log.Infow("dataset loaded", "dataset", KindMethods, "path", paths.Methods, "records", m.Len())
	}

	if g, err := LoadKeywords(paths.Keywords); err != nil {
		record(KindKeywords, paths.Keywords, err)
	} else {
		b.Keywords = g
		log.Infow("dataset loaded", "dataset", KindKeywords, "path", paths.Keywords, "records", g.Len())
	}

	return b
}

// Ready reports whether kind loaded.
func (b *Bundle) Ready(kind Kind) bool {
	switch kind {
	case KindElements:
		return b.Elements != nil
	case KindMethods:
		return b.Methods != nil
	case KindKeywords:
		return b.Keywords != nil
	}
	return false
}

// Problem returns the load problem for kind, if any.
func (b *Bundle) Problem(kind Kind) (Problem, bool) {
	for _, p := range b.Problems {
		if p.Dataset == kind {
			return p, true
		}
	}
	return Problem{}, false
}
