package grammar

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// rawRule is a parsed but not yet validated source line.
type rawRule struct {
	lhs  string
	rhs  []string
	prob float64
	line int
	text string
}

// Load reads a PCFG from r and returns a validated, immutable Grammar.
//
// Source format (one declaration per line):
//
//	S -> NP VP ; 0.9       binary rule with probability
//	N -> dog               lexical rule; omitted probability defaults to 1.0
//	# anything             comment, skipped
//	S ; 1.0                start-symbol declaration (no "->")
//
// Validation is strict and fatal: probabilities must be finite and in
// (0, 1]; every rule must be binary over nonterminals or unary over a
// terminal (Chomsky normal form); a binary right-hand symbol with no rules
// of its own is rejected as undefined. Each failure wraps one of the
// package sentinels and names the offending line and rule text, so a bad
// grammar is reported precisely and nothing downstream ever sees it.
func Load(r io.Reader) (*Grammar, error) {
	var (
		raws      []rawRule
		startName string
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "->") {
			rr, err := parseRuleLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			raws = append(raws, rr)
			continue
		}
		name, err := parseStartLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		// A later declaration overrides an earlier one.
		startName = name
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grammar: reading source: %w", err)
	}

	return assemble(raws, startName)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// ParseString loads a grammar from an in-memory string, which keeps tests
// and examples free of fixture files.
func ParseString(text string) (*Grammar, error) {
	return Load(strings.NewReader(text))
}

// parseRuleLine splits "LHS -> RHS ; prob" into its parts.
// The probability clause is optional and defaults to 1.0.
func parseRuleLine(line string, lineNo int) (rawRule, error) {
	lhsText, rest, _ := strings.Cut(line, "->")
	if strings.Contains(rest, "->") {
		return rawRule{}, fmt.Errorf("%w: line %d: second \"->\" in %q", ErrRuleFormat, lineNo, line)
	}

	lhs := strings.TrimSpace(lhsText)
	if lhs == "" || len(strings.Fields(lhs)) != 1 {
		return rawRule{}, fmt.Errorf("%w: line %d: expected a single left-hand symbol in %q", ErrRuleFormat, lineNo, line)
	}
	if strings.Contains(lhs, ";") {
		return rawRule{}, fmt.Errorf("%w: line %d: %q before \"->\" in %q", ErrRuleFormat, lineNo, ";", line)
	}

	rhsText := rest
	prob := 1.0
	switch strings.Count(rest, ";") {
	case 0:
		// no probability clause
	case 1:
		var probText string
		rhsText, probText, _ = strings.Cut(rest, ";")
		p, err := strconv.ParseFloat(strings.TrimSpace(probText), 64)
		if err != nil {
			return rawRule{}, fmt.Errorf("%w: line %d: %q in %q", ErrBadProbability, lineNo, strings.TrimSpace(probText), line)
		}
		prob = p
	default:
		return rawRule{}, fmt.Errorf("%w: line %d: more than one %q in %q", ErrRuleFormat, lineNo, ";", line)
	}
	if math.IsNaN(prob) || math.IsInf(prob, 0) || prob <= 0 || prob > 1 {
		return rawRule{}, fmt.Errorf("%w: line %d: %g in %q", ErrBadProbability, lineNo, prob, line)
	}

	rhs := strings.Fields(rhsText)
	if len(rhs) == 0 || len(rhs) > 2 {
		return rawRule{}, fmt.Errorf("%w: line %d: expected 1 or 2 right-hand symbols, found %d in %q",
			ErrNotCNF, lineNo, len(rhs), line)
	}

	return rawRule{lhs: lhs, rhs: rhs, prob: prob, line: lineNo, text: line}, nil
}

// parseStartLine handles a declaration line without "->": either a bare
// symbol or "SYM ; prob" in the style of the rule lines.
func parseStartLine(line string, lineNo int) (string, error) {
	nameText, _, _ := strings.Cut(line, ";")
	fields := strings.Fields(nameText)
	if len(fields) != 1 {
		return "", fmt.Errorf("%w: line %d: expected a start-symbol declaration, got %q", ErrRuleFormat, lineNo, line)
	}

	return fields[0], nil
}

// assemble interns symbols, classifies and validates every rule, and builds
// the lookup indexes. Nonterminal ids follow declaration order, which later
// fixes the parser's deterministic iteration order.
func assemble(raws []rawRule, startName string) (*Grammar, error) {
	if len(raws) == 0 {
		return nil, ErrEmptyGrammar
	}

	g := &Grammar{
		ids:     make(map[string]int, len(raws)),
		byPair:  make(map[int][]BinaryRule),
		byToken: make(map[string][]LexicalRule),
	}

	// Pass 1: every left-hand symbol becomes a nonterminal id. After this
	// pass the id space is final, so pair keys can be packed safely.
	for _, rr := range raws {
		if _, ok := g.ids[rr.lhs]; !ok {
			g.ids[rr.lhs] = len(g.names)
			g.names = append(g.names, rr.lhs)
		}
	}
	g.byLeft = make([][]BinaryRule, len(g.names))

	// Pass 2: classify each rule against the now-complete nonterminal set.
	seenTerm := make(map[string]bool)
	for _, rr := range raws {
		lhsID := g.ids[rr.lhs]
		switch len(rr.rhs) {
		case 1:
			tok := rr.rhs[0]
			if _, isNonterminal := g.ids[tok]; isNonterminal {
				return nil, fmt.Errorf("%w: line %d: %q (right-hand %q has rules of its own)",
					ErrUnitRule, rr.line, rr.text, tok)
			}
			lr := LexicalRule{
				LHS:     lhsID,
				Token:   tok,
				Prob:    rr.prob,
				LogProb: math.Log(rr.prob),
				Line:    rr.line,
			}
			g.lexical = append(g.lexical, lr)
			g.byToken[tok] = append(g.byToken[tok], lr)
			if !seenTerm[tok] {
				seenTerm[tok] = true
				g.terms = append(g.terms, tok)
			}
		case 2:
			left, ok := g.ids[rr.rhs[0]]
			if !ok {
				return nil, fmt.Errorf("%w: line %d: %q (symbol %q)", ErrUndefinedSymbol, rr.line, rr.text, rr.rhs[0])
			}
			right, ok := g.ids[rr.rhs[1]]
			if !ok {
				return nil, fmt.Errorf("%w: line %d: %q (symbol %q)", ErrUndefinedSymbol, rr.line, rr.text, rr.rhs[1])
			}
			br := BinaryRule{
				LHS:     lhsID,
				Left:    left,
				Right:   right,
				Prob:    rr.prob,
				LogProb: math.Log(rr.prob),
				Line:    rr.line,
			}
			g.binary = append(g.binary, br)
			key := g.pairKey(left, right)
			g.byPair[key] = append(g.byPair[key], br)
			g.byLeft[lhsID] = append(g.byLeft[lhsID], br)
		}
	}

	// Start symbol: explicit declaration wins, otherwise the first LHS.
	if startName != "" {
		id, ok := g.ids[startName]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStart, startName)
		}
		g.start = id
	}

	return g, nil
}
