package mlw

// EventKind classifies the declarations the separation checks care about.
type EventKind int

const (
	// EventModule is a module declaration at the start of a line,
	// optionally ascribed to an interface module ("module XProofs : XLemmas").
	EventModule EventKind = iota
	// EventLemmaDecl is a "val lemma" declaration.
	EventLemmaDecl
	// EventAxiomDecl is an "axiom" declaration.
	EventAxiomDecl
)

// Event is one classified declaration, reported together with the scan
// state in force where it occurred. Enclosing is the name of the module
// the declaration sits in, or "" at file scope.
type Event struct {
	Kind      EventKind
	Name      string // module name, for EventModule
	Ascribed  string // interface module after ':', for EventModule
	Enclosing string
	Pos       Position
}

// Scan tokenizes src and returns its classified declarations in
// document order. The enclosing module is tracked explicitly: a module
// declaration updates it for every later event until the next one. A
// "module" keyword that is not at column 1 does not open a module, which
// matches how Why3 sources indent nested scopes.
func Scan(src string) []Event {
	tokens := NewLexer(src).Tokenize()

	var events []Event
	enclosing := ""
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != TokenIdent {
			continue
		}
		switch tok.Value {
		case "module":
			if tok.Pos.Column != 1 || !isIdentToken(tokens, i+1) {
				continue
			}
			ev := Event{
				Kind: EventModule,
				Name: tokens[i+1].Value,
				Pos:  tok.Pos,
			}
			if isColonToken(tokens, i+2) && isIdentToken(tokens, i+3) {
				ev.Ascribed = tokens[i+3].Value
			}
			enclosing = ev.Name
			ev.Enclosing = enclosing
			events = append(events, ev)

		case "val":
			if isIdentToken(tokens, i+1) && tokens[i+1].Value == "lemma" {
				events = append(events, Event{
					Kind:      EventLemmaDecl,
					Enclosing: enclosing,
					Pos:       tok.Pos,
				})
				i++ // lemma consumed
			}

		case "axiom":
			events = append(events, Event{
				Kind:      EventAxiomDecl,
				Enclosing: enclosing,
				Pos:       tok.Pos,
			})
		}
	}
	return events
}

func isIdentToken(tokens []Token, i int) bool {
	return i < len(tokens) && tokens[i].Type == TokenIdent
}

func isColonToken(tokens []Token, i int) bool {
	return i < len(tokens) && tokens[i].Type == TokenColon
}
