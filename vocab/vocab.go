// Package vocab holds the word tables the parser consults: verbs and their
// synonyms, prepositions, directions, pronouns, noise words, and the
// per-game noun/adjective index built from loaded items. It contains no
// grammar or resolution logic of its own — parser and scope consult it.
package vocab

import (
	"sort"
	"strings"

	"github.com/nathoo/gnusto/types"
)

// Directions is the closed set of compass/vertical directions the engine
// understands, plus their one- and two-letter abbreviations.
var Directions = map[string]string{
	"north": "north", "n": "north",
	"south": "south", "s": "south",
	"east": "east", "e": "east",
	"west": "west", "w": "west",
	"northeast": "northeast", "ne": "northeast",
	"northwest": "northwest", "nw": "northwest",
	"southeast": "southeast", "se": "southeast",
	"southwest": "southwest", "sw": "southwest",
	"up": "up", "u": "up",
	"down": "down", "d": "down",
	"in": "in", "out": "out",
}

// Prepositions the parser recognizes when matching a verb's SyntaxRule.
var Prepositions = map[string]bool{
	"on": true, "onto": true, "in": true, "into": true, "inside": true,
	"with": true, "at": true, "to": true, "from": true, "under": true,
	"about": true, "through": true, "behind": true, "over": true,
}

// Articles are stripped from noun phrases before matching.
var Articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// NoiseWords are filler words dropped before verb/noun matching, beyond
// articles: politeness markers and connective words a player might type.
var NoiseWords = map[string]bool{
	"please": true, "just": true, "now": true, "then": true, "and": true,
}

// Pronouns maps a pronoun word to the logical bucket it resolves against
// in GameState.Pronouns ("it", "them" share referents set by the most
// recent singular/plural noun phrase).
var Pronouns = map[string]string{
	"it":   "it",
	"him":  "it",
	"her":  "it",
	"them": "them",
}

// UniversalNouns name ambient things that are always in scope but never
// correspond to a concrete Item: spec.md §4.2's "universal objects".
var UniversalNouns = map[string]string{
	"air": "air", "sky": "air",
	"ground": "ground", "floor": "ground",
	"me": "self", "myself": "self", "self": "self",
}

// Verb is a recognized action word: its canonical id, the syntax shapes it
// accepts, and whether it requires light to be processed at all.
type Verb struct {
	ID            string
	Syntax        []types.SyntaxRule
	RequiresLight bool
}

// verbAliases maps every recognized surface word or phrase (single- or
// multi-word, space separated) to a canonical verb id. Longest phrase
// wins: the lookup table is consulted by MatchVerb, which tries four-,
// three-, two-, then one-word prefixes of the input before giving up.
var verbAliases = map[string]string{
	// Movement
	"go": "go", "walk": "go", "run": "go", "move": "go", "head": "go",
	"proceed": "go", "travel": "go",
	"enter": "enter", "get in": "enter", "get into": "enter", "go in": "enter",
	"exit": "exit", "get out": "exit", "leave": "exit", "go out": "exit",
	"climb": "climb", "scale": "climb", "climb up": "climb", "climb on": "climb",

	// Look / Examine
	"look": "look", "l": "look",
	"look at": "examine", "examine": "examine", "x": "examine",
	"inspect": "examine", "check": "examine", "study": "examine",
	"observe": "examine", "describe": "examine",
	"look in": "look_in", "look inside": "look_in", "search": "look_in",
	"look under": "look_under",

	// Inventory / meta queries
	"inventory": "inventory", "inv": "inventory", "i": "inventory",
	"score": "score", "wait": "wait", "z": "wait",

	// Take / Drop / Put
	"take": "take", "get": "take", "grab": "take", "hold": "take",
	"carry": "take", "catch": "take", "pick up": "take",
	"drop": "drop", "discard": "drop", "put down": "drop",
	"put": "put_on", "put on": "put_on", "place on": "put_on",
	"put in": "insert", "put into": "insert", "insert": "insert",

	// Open / Close / Lock
	"open": "open",
	"close": "close", "shut": "close",
	"lock": "lock",
	"unlock": "unlock",

	// Wear / Remove
	"wear": "wear", "don": "wear",
	"remove": "remove", "take off": "remove", "doff": "remove",

	// Devices / Fire
	"turn on": "turn_on", "switch on": "turn_on", "activate": "turn_on",
	"turn off": "turn_off", "switch off": "turn_off", "deactivate": "turn_off",
	"burn": "burn", "light": "burn", "ignite": "burn",
	"extinguish": "extinguish", "put out": "extinguish", "douse": "extinguish",

	// Combat
	"attack": "attack", "hit": "attack", "fight": "attack", "strike": "attack",
	"kill": "attack", "punch": "attack", "kick": "attack", "smash": "attack",

	// Reading / dialogue
	"read": "read",
	"ask": "ask", "ask about": "ask",
	"tell": "tell", "tell about": "tell",
	"yes": "yes", "y": "yes",
	"no": "no", "n_answer": "no",

	// Meta / session
	"save": "save", "restore": "restore", "load": "restore",
	"restart": "restart", "quit": "quit", "q": "quit",
	"script": "script", "unscript": "unscript",
	"verbose": "verbose", "brief": "brief",
	"debug": "debug", "xyzzy": "xyzzy",

	// Generic sensory / social verbs (kept from the teacher's alias list,
	// expanded to match spec's "rest of the verb surface" note).
	"smell": "smell", "sniff": "smell",
	"listen": "listen", "hear": "listen",
	"touch": "touch", "feel": "touch", "rub": "touch",
	"push": "push", "press": "push", "shove": "push",
	"pull": "pull", "drag": "pull", "tug": "pull", "yank": "pull",
	"give": "give", "offer": "give", "hand": "give",
	"show": "show",
	"throw": "throw", "toss": "throw", "hurl": "throw",
	"eat": "eat", "consume": "eat", "taste": "eat", "bite": "eat",
	"drink": "drink", "sip": "drink", "swallow": "drink", "quaff": "drink",
	"tie": "tie", "fasten": "tie", "attach": "tie",
	"untie": "untie", "detach": "untie", "release": "untie",
	"wave": "wave",
	"sing": "sing",
	"pray": "pray",
	"sleep": "sleep", "nap": "sleep", "rest": "sleep",
	"knock": "knock", "rap": "knock",
	"yell": "yell", "scream": "yell", "shout": "yell",
	"swim": "swim", "dive": "swim",
	"buy": "buy", "purchase": "buy",
}

// maxVerbPhraseWords bounds the longest-match-wins scan: phrases of up to
// four words are tried. No alias in verbAliases is longer than that.
const maxVerbPhraseWords = 4

// MatchVerb finds the longest recognized verb phrase at the start of words
// and returns the canonical verb id, plus the count of words it consumed.
// Ok is false if no word at words[0] is a recognized verb.
func MatchVerb(words []string) (id string, consumed int, ok bool) {
	if len(words) == 0 {
		return "", 0, false
	}
	limit := maxVerbPhraseWords
	if limit > len(words) {
		limit = len(words)
	}
	for n := limit; n >= 1; n-- {
		phrase := strings.Join(words[:n], " ")
		if canon, found := verbAliases[phrase]; found {
			return canon, n, true
		}
	}
	return "", 0, false
}

// NounIndex is a per-game lookup built from the loaded Items: every noun or
// synonym word maps to the set of item ids it could refer to, and every
// adjective word maps to the set of item ids it could qualify. The engine
// builds it in New and rebuilds it through Engine.RefreshNounIndex.
type NounIndex struct {
	nouns      map[string]map[string]bool
	adjectives map[string]map[string]bool
}

// BuildNounIndex scans every Item's Name and Synonyms into the noun table,
// and every Adjectives entry into the adjective table.
func BuildNounIndex(items map[string]*types.Item) *NounIndex {
	idx := &NounIndex{
		nouns:      map[string]map[string]bool{},
		adjectives: map[string]map[string]bool{},
	}
	for id, it := range items {
		addWord(idx.nouns, strings.ToLower(it.Name), id)
		for syn := range it.Synonyms {
			addWord(idx.nouns, strings.ToLower(syn), id)
		}
		for adj := range it.Adjectives {
			addWord(idx.adjectives, strings.ToLower(adj), id)
		}
	}
	return idx
}

func addWord(table map[string]map[string]bool, word, id string) {
	if word == "" {
		return
	}
	set, ok := table[word]
	if !ok {
		set = map[string]bool{}
		table[word] = set
	}
	set[id] = true
}

// CandidatesForNoun returns every item id registered under noun, sorted.
func (idx *NounIndex) CandidatesForNoun(noun string) []string {
	return sortedKeys(idx.nouns[strings.ToLower(noun)])
}

// CandidatesForAdjective returns every item id registered under adj, sorted.
func (idx *NounIndex) CandidatesForAdjective(adj string) []string {
	return sortedKeys(idx.adjectives[strings.ToLower(adj)])
}

// KnowsNoun reports whether word is registered as a noun for any item.
func (idx *NounIndex) KnowsNoun(word string) bool {
	_, ok := idx.nouns[strings.ToLower(word)]
	return ok
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsDirection reports whether word is a recognized direction word (full
// name or abbreviation) and returns its canonical full name.
func IsDirection(word string) (string, bool) {
	d, ok := Directions[strings.ToLower(word)]
	return d, ok
}
