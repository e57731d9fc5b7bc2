package wordlist

import "github.com/verte-zerg/tokfreq/internal/textnorm"

// Set is a stop-word set. Every member is a fixed point of textnorm.Strip.
type Set map[string]struct{}

// Contains reports whether token is a stop word.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of distinct stop words.
func (s Set) Len() int {
	return len(s)
}

// BuildStopSet strips every entry of the given lists with the corpus transform
// and collects the non-empty results. A disabled set is empty.
func BuildStopSet(enabled bool, lists ...[]string) Set {
	set := Set{}
	if !enabled {
		return set
	}
	for _, list := range lists {
		for _, word := range list {
			stripped := textnorm.Strip(word)
			if stripped == "" {
				continue
			}
			set[stripped] = struct{}{}
		}
	}
	return set
}

// StopWords builds the stop set from the built-in English list plus the
// optional list file at extraPath.
func StopWords(enabled bool, extraPath string) (Set, error) {
	if !enabled {
		return Set{}, nil
	}
	lists := [][]string{English()}
	if extraPath != "" {
		extra, err := LoadWords(extraPath)
		if err != nil {
			return nil, err
		}
		lists = append(lists, extra)
	}
	return BuildStopSet(true, lists...), nil
}
