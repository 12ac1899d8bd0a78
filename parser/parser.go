// Package parser converts a raw command line into a types.Command, or a
// ParseError describing exactly why it couldn't. It runs the seven-stage
// pipeline: tokenize, strip noise words, bare-direction shortcut, verb
// identification, syntax-rule matching, noun-phrase resolution, and —
// on failure of every candidate rule — selection of the most informative
// error to report.
package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nathoo/gnusto/scope"
	"github.com/nathoo/gnusto/types"
	"github.com/nathoo/gnusto/vocab"
)

// World is the read-only view the parser needs of the running game: the
// player's current location and an index of known nouns/adjectives.
type World struct {
	State     *types.GameState
	Location  *types.Location
	NounIndex *vocab.NounIndex
}

// Parse runs the full pipeline against one line of input.
func Parse(input string, w World) (types.Command, ParseError) {
	raw := input
	words := tokenize(input)
	if len(words) == 0 {
		return types.Command{}, EmptyInputError{}
	}

	words = stripNoise(words)
	if len(words) == 0 {
		return types.Command{}, EmptyInputError{}
	}

	// Bare-direction shortcut: a lone direction word means GO <direction>.
	if len(words) == 1 {
		if dir, ok := vocab.IsDirection(words[0]); ok {
			return types.Command{Verb: "go", Direction: dir, Raw: raw}, nil
		}
	}

	verbID, consumed, ok := vocab.MatchVerb(words)
	if !ok {
		return types.Command{}, UnknownVerbError{Word: words[0]}
	}
	rest := words[consumed:]

	verb, ok := vocab.Verbs[verbID]
	if !ok {
		return types.Command{}, InternalError{Detail: "verb " + verbID + " has no registry entry"}
	}

	var errs []ParseError
	for _, rule := range verb.Syntax {
		cmd, err := matchRule(verbID, rule, rest, w)
		if err == nil {
			cmd.Raw = raw
			return cmd, nil
		}
		errs = append(errs, err)
	}
	return types.Command{}, bestError(errs)
}

// tokenize normalizes input to NFC (so visually-identical accented words
// typed with combining marks match the same vocabulary entries as their
// precomposed form), lowercases it, and splits on whitespace.
func tokenize(input string) []string {
	normalized := norm.NFC.String(input)
	return strings.Fields(strings.ToLower(strings.TrimSpace(normalized)))
}

// stripNoise removes articles and filler words that never affect grammar.
func stripNoise(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if vocab.Articles[w] || vocab.NoiseWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// matchRule tries to bind one SyntaxRule's pattern against rest, in order.
func matchRule(verbID string, rule types.SyntaxRule, rest []string, w World) (types.Command, ParseError) {
	cmd := types.Command{Verb: verbID}
	i := 0

	for pi, tokPat := range rule.Pattern {
		if tokPat.Kind == types.PatVerb {
			continue // already consumed
		}
		switch tokPat.Kind {
		case types.PatDirection:
			if i >= len(rest) {
				return types.Command{}, BadGrammarError{Verb: verbID}
			}
			dir, ok := vocab.IsDirection(rest[i])
			if !ok {
				return types.Command{}, BadGrammarError{Verb: verbID}
			}
			cmd.Direction = dir
			i++

		case types.PatPreposition:
			if i >= len(rest) || !vocab.Prepositions[rest[i]] {
				return types.Command{}, BadGrammarError{Verb: verbID}
			}
			if tokPat.RequiredPrep != "" && rest[i] != tokPat.RequiredPrep {
				return types.Command{}, BadGrammarError{Verb: verbID}
			}
			cmd.Preposition = rest[i]
			i++

		case types.PatParticle:
			if i >= len(rest) || rest[i] != tokPat.Particle {
				return types.Command{}, BadGrammarError{Verb: verbID}
			}
			i++

		case types.PatDirectObject, types.PatDirectObjects, types.PatIndirectObject, types.PatIndirectObjects:
			isDirect := tokPat.Kind == types.PatDirectObject || tokPat.Kind == types.PatDirectObjects
			allowAll := tokPat.Kind == types.PatDirectObjects || tokPat.Kind == types.PatIndirectObjects

			end := len(rest)
			// An object phrase runs until the next preposition token in the
			// pattern, if there is one.
			if hasLaterPrep(rule.Pattern, pi) {
				for j := i; j < len(rest); j++ {
					if vocab.Prepositions[rest[j]] {
						end = j
						break
					}
				}
			}
			if i >= end {
				return types.Command{}, BadGrammarError{Verb: verbID}
			}
			phrase := rest[i:end]
			i = end

			conds := rule.DirectObjectConds
			if !isDirect {
				conds = rule.IndirectObjectConds
			}

			if len(phrase) == 1 && phrase[0] == "all" || len(phrase) == 1 && phrase[0] == "everything" {
				if !allowAll {
					return types.Command{}, BadGrammarError{Verb: verbID}
				}
				refs, perr := resolveAll(w, conds)
				if perr != nil {
					return types.Command{}, perr
				}
				if isDirect {
					cmd.DirectObjects = refs
					cmd.IsAllDirect = true
				} else {
					cmd.IndirectObjects = refs
					cmd.IsAllIndirect = true
				}
				continue
			}

			ref, perr := resolvePhrase(phrase, w, conds)
			if perr != nil {
				return types.Command{}, perr
			}
			if isDirect {
				cmd.DirectObject = &ref
			} else {
				cmd.IndirectObject = &ref
			}
		}
	}

	if i != len(rest) {
		return types.Command{}, BadGrammarError{Verb: verbID}
	}
	return cmd, nil
}

func hasLaterPrep(pattern []types.PatternToken, from int) bool {
	for _, p := range pattern[from+1:] {
		if p.Kind == types.PatPreposition {
			return true
		}
	}
	return false
}

// resolvePhrase resolves a noun phrase (adjectives + noun, or a pronoun, or
// a universal noun) to a single EntityRef, applying scope and condition
// filtering and, when several items still match, reporting ambiguity.
func resolvePhrase(phrase []string, w World, conds []types.ObjectCondition) (types.EntityRef, ParseError) {
	if len(phrase) == 1 {
		if bucket, ok := vocab.Pronouns[phrase[0]]; ok {
			return resolvePronoun(phrase[0], bucket, w, conds)
		}
		if kind, ok := vocab.UniversalNouns[phrase[0]]; ok {
			return types.UniversalRef(kind), nil
		}
	}

	noun := phrase[len(phrase)-1]
	adjectives := phrase[:len(phrase)-1]

	if !w.NounIndex.KnowsNoun(noun) {
		return types.EntityRef{}, UnknownNounError{Word: noun}
	}

	candidates := w.NounIndex.CandidatesForNoun(noun)
	candidates = filterInScope(candidates, w)
	if len(candidates) == 0 {
		return types.EntityRef{}, ItemNotInScopeError{Word: noun}
	}

	for _, adj := range adjectives {
		adjSet := map[string]bool{}
		for _, id := range w.NounIndex.CandidatesForAdjective(adj) {
			adjSet[id] = true
		}
		var next []string
		for _, id := range candidates {
			if adjSet[id] {
				next = append(next, id)
			}
		}
		if len(next) == 0 {
			return types.EntityRef{}, ModifierMismatchError{Adjective: adj, Noun: noun}
		}
		candidates = next
	}

	candidates = filterByConditions(candidates, w, conds)
	switch len(candidates) {
	case 0:
		return types.EntityRef{}, ItemNotInScopeError{Word: noun}
	case 1:
		return types.ItemRef(candidates[0]), nil
	default:
		return types.EntityRef{}, AmbiguityError{Word: noun, Candidates: candidates}
	}
}

func resolvePronoun(word, bucket string, w World, conds []types.ObjectCondition) (types.EntityRef, ParseError) {
	refs, ok := w.State.Pronouns[bucket]
	if !ok || len(refs) == 0 {
		return types.EntityRef{}, PronounNotSetError{Pronoun: word}
	}
	var ids []string
	for id := range refs {
		ids = append(ids, id)
	}
	ids = filterInScope(ids, w)
	ids = filterByConditions(ids, w, conds)
	if len(ids) == 0 {
		return types.EntityRef{}, PronounStaleError{Pronoun: word}
	}
	if len(ids) > 1 {
		return types.EntityRef{}, AmbiguityError{Word: word, Candidates: ids}
	}
	return types.ItemRef(ids[0]), nil
}

func resolveAll(w World, conds []types.ObjectCondition) ([]types.EntityRef, ParseError) {
	ids := scope.InScope(w.State, w.Location)
	ids = filterByConditions(ids, w, conds)
	refs := make([]types.EntityRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, types.ItemRef(id))
	}
	return refs, nil
}

func filterInScope(ids []string, w World) []string {
	inScope := scope.InScopeSet(w.State, w.Location)
	var out []string
	for _, id := range ids {
		if inScope[id] {
			out = append(out, id)
		}
	}
	return out
}

func filterByConditions(ids []string, w World, conds []types.ObjectCondition) []string {
	if len(conds) == 0 {
		return ids
	}
	var out []string
	for _, id := range ids {
		it, ok := w.State.Items[id]
		if !ok {
			continue
		}
		if satisfiesAll(it, w, conds) {
			out = append(out, id)
		}
	}
	return out
}

func satisfiesAll(it *types.Item, w World, conds []types.ObjectCondition) bool {
	for _, c := range conds {
		switch c {
		case types.CondHeld:
			if !it.Parent.IsPlayer() {
				return false
			}
		case types.CondContainer:
			if !it.Flags.Has(types.FlagContainer) {
				return false
			}
		case types.CondSurface:
			if !it.Flags.Has(types.FlagSurface) {
				return false
			}
		case types.CondPerson:
			if !it.Flags.Has(types.FlagCharacter) {
				return false
			}
		case types.CondOnGround:
			if it.Parent.Kind != types.ParentLocation || it.Parent.ID != w.Location.ID {
				return false
			}
		}
	}
	return true
}
