package vocab

import "github.com/nathoo/gnusto/types"

func tok(kind types.PatternTokenKind) types.PatternToken { return types.PatternToken{Kind: kind} }

func prep(p string) types.PatternToken {
	return types.PatternToken{Kind: types.PatPreposition, RequiredPrep: p}
}

func particle(p string) types.PatternToken {
	return types.PatternToken{Kind: types.PatParticle, Particle: p}
}

var (
	verbOnly   = []types.PatternToken{tok(types.PatVerb)}
	verbDO     = []types.PatternToken{tok(types.PatVerb), tok(types.PatDirectObject)}
	verbDOs    = []types.PatternToken{tok(types.PatVerb), tok(types.PatDirectObjects)}
	verbDirOpt = []types.PatternToken{tok(types.PatVerb), tok(types.PatDirection)}
)

func verbDOPrepIO(p string) []types.PatternToken {
	return []types.PatternToken{
		tok(types.PatVerb), tok(types.PatDirectObject), prep(p), tok(types.PatIndirectObject),
	}
}

// Verbs is the registry of every recognized canonical verb id and the
// grammatical shapes it accepts. The parser matches a command's token
// stream against a verb's Syntax in order and takes the first fit;
// RequiresLight mirrors the handler's own flag; the engine's dark-room
// check reads the handler's RequiresLight, not this field.
var Verbs = buildVerbs(verbTable)

// verbEntry is one row of verbTable: a verb whose syntax rules are bare
// patterns with no object conditions.
type verbEntry struct {
	ID            string
	Syntax        [][]types.PatternToken
	RequiresLight bool
}

func buildVerbs(table map[string]verbEntry) map[string]Verb {
	out := make(map[string]Verb, len(table))
	for id, e := range table {
		v := Verb{ID: e.ID, RequiresLight: e.RequiresLight}
		for _, p := range e.Syntax {
			v.Syntax = append(v.Syntax, types.SyntaxRule{Pattern: p})
		}
		out[id] = v
	}
	return out
}

var verbTable = map[string]verbEntry{
	// Movement
	"go":    {ID: "go", Syntax: [][]types.PatternToken{verbDirOpt}, RequiresLight: false},
	"enter": {ID: "enter", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"exit":  {ID: "exit", Syntax: [][]types.PatternToken{verbOnly}[0:1], RequiresLight: false},
	"climb": {ID: "climb", Syntax: [][]types.PatternToken{verbDO, verbDirOpt}, RequiresLight: true},

	// Senses
	"look":        {ID: "look", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"examine":     {ID: "examine", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"look_in":     {ID: "look_in", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"look_under":  {ID: "look_under", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"smell":       {ID: "smell", Syntax: [][]types.PatternToken{verbOnly, verbDO}, RequiresLight: false},
	"listen":      {ID: "listen", Syntax: [][]types.PatternToken{verbOnly, verbDO}, RequiresLight: false},
	"touch":       {ID: "touch", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},

	// Inventory / meta queries
	"inventory": {ID: "inventory", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"score":     {ID: "score", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"wait":      {ID: "wait", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},

	// Manipulation
	"take": {ID: "take", Syntax: [][]types.PatternToken{verbDO, verbDOs}, RequiresLight: true},
	"drop": {ID: "drop", Syntax: [][]types.PatternToken{verbDO, verbDOs}, RequiresLight: true},
	"put_on": {
		ID: "put_on",
		Syntax: [][]types.PatternToken{
			verbDOPrepIO("on"),
			verbDOPrepIO("in"),
		},
		RequiresLight: true,
	},
	"insert": {
		ID: "insert",
		Syntax: [][]types.PatternToken{
			verbDOPrepIO("in"),
		},
		RequiresLight: true,
	},

	// Containers / fastenings
	"open":   {ID: "open", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"close":  {ID: "close", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"lock":   {ID: "lock", Syntax: [][]types.PatternToken{verbDOPrepIO("with")}, RequiresLight: true},
	"unlock": {ID: "unlock", Syntax: [][]types.PatternToken{verbDOPrepIO("with")}, RequiresLight: true},

	// Wearables
	"wear":   {ID: "wear", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"remove": {ID: "remove", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},

	// Devices / fire
	"turn_on":    {ID: "turn_on", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: false},
	"turn_off":   {ID: "turn_off", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: false},
	"burn":       {ID: "burn", Syntax: [][]types.PatternToken{verbDO, verbDOPrepIO("with")}, RequiresLight: true},
	"extinguish": {ID: "extinguish", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: false},

	// Combat
	"attack": {ID: "attack", Syntax: [][]types.PatternToken{verbDO, verbDOPrepIO("with")}, RequiresLight: true},

	// Reading / dialogue
	"read": {ID: "read", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"ask":  {ID: "ask", Syntax: [][]types.PatternToken{verbDOPrepIO("about")}, RequiresLight: true},
	"tell": {ID: "tell", Syntax: [][]types.PatternToken{verbDOPrepIO("about")}, RequiresLight: true},
	"yes":  {ID: "yes", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"no":   {ID: "no", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},

	// Meta / session — never gated on light.
	"save":     {ID: "save", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"restore":  {ID: "restore", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"restart":  {ID: "restart", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"quit":     {ID: "quit", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"script":   {ID: "script", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"unscript": {ID: "unscript", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"verbose":  {ID: "verbose", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"brief":    {ID: "brief", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"debug":    {ID: "debug", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"xyzzy":    {ID: "xyzzy", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},

	// Generic sensory / social verbs.
	"push":   {ID: "push", Syntax: [][]types.PatternToken{verbDO, verbDOPrepIO("to")}, RequiresLight: true},
	"pull":   {ID: "pull", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"give":   {ID: "give", Syntax: [][]types.PatternToken{verbDOPrepIO("to")}, RequiresLight: true},
	"show":   {ID: "show", Syntax: [][]types.PatternToken{verbDOPrepIO("to")}, RequiresLight: true},
	"throw":  {ID: "throw", Syntax: [][]types.PatternToken{verbDOPrepIO("at")}, RequiresLight: true},
	"eat":    {ID: "eat", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"drink":  {ID: "drink", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"tie":    {ID: "tie", Syntax: [][]types.PatternToken{verbDOPrepIO("to")}, RequiresLight: true},
	"untie":  {ID: "untie", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
	"wave":   {ID: "wave", Syntax: [][]types.PatternToken{verbOnly, verbDO}, RequiresLight: false},
	"sing":   {ID: "sing", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"pray":   {ID: "pray", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"sleep":  {ID: "sleep", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"knock":  {ID: "knock", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: false},
	"yell":   {ID: "yell", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: false},
	"swim":   {ID: "swim", Syntax: [][]types.PatternToken{verbOnly}, RequiresLight: true},
	"buy":    {ID: "buy", Syntax: [][]types.PatternToken{verbDO}, RequiresLight: true},
}

// particle is unused by the static table above. It builds a literal-word
// pattern token (e.g. "turn dial to 7"); being unexported, it is usable
// only inside this package.
var _ = particle
