package treebank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pcfg/tree"
)

// NoParseMarker is the output line that stands in for a sentence the parser
// could not derive. ReadTrees maps it back to a nil tree.
const NoParseMarker = "NOPARSE"

// maxLineBytes caps a single corpus line. Deep trees over long sentences fit
// comfortably under one MiB.
const maxLineBytes = 1 << 20

// Entry is one line of a tree file.
//
// Exactly one of three states holds: Tree is non-nil for a well-formed
// parse; Tree is nil with Err == nil for a NoParseMarker line; Err is
// non-nil for a malformed line (it wraps tree.ErrBracketSyntax). Line is
// the 1-based line number in the source either way.
type Entry struct {
	Tree *tree.Node
	Line int
	Err  error
}

// ReadSentences reads one sentence per line from r, splitting tokens on
// Unicode whitespace. Blank lines and lines starting with '#' are skipped.
// Only a read failure on r itself is an error; there is no such thing as a
// malformed sentence line.
func ReadSentences(r io.Reader) ([][]string, error) {
	var sentences [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("treebank: read sentences: %w", err)
	}
	return sentences, nil
}

// ReadSentencesFile reads a sentence file from disk.
func ReadSentencesFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("treebank: %w", err)
	}
	defer f.Close()
	return ReadSentences(f)
}

// ReadTrees reads one bracketed tree per line from r. Blank lines and '#'
// comment lines are skipped; skipped lines still advance the line count.
// A NoParseMarker line yields an Entry with a nil Tree. A malformed line
// yields an Entry whose Err names the line and wraps tree.ErrBracketSyntax;
// reading continues, so one bad line never hides the rest of the file.
func ReadTrees(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == NoParseMarker {
			entries = append(entries, Entry{Line: lineNo})
			continue
		}
		root, err := tree.ParseBracketed(line)
		if err != nil {
			entries = append(entries, Entry{
				Line: lineNo,
				Err:  fmt.Errorf("treebank: line %d: %w", lineNo, err),
			})
			continue
		}
		entries = append(entries, Entry{Tree: root, Line: lineNo})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("treebank: read trees: %w", err)
	}
	return entries, nil
}

// ReadTreesFile reads a tree file from disk.
func ReadTreesFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("treebank: %w", err)
	}
	defer f.Close()
	return ReadTrees(f)
}

// WriteTree writes root to w as one bracketed line, or the NoParseMarker
// line when root is nil.
func WriteTree(w io.Writer, root *tree.Node) error {
	line := NoParseMarker
	if root != nil {
		line = root.String()
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("treebank: write tree: %w", err)
	}
	return nil
}

// WriteTrees writes one line per tree in order; nil roots become markers.
func WriteTrees(w io.Writer, roots []*tree.Node) error {
	bw := bufio.NewWriter(w)
	for _, root := range roots {
		if err := WriteTree(bw, root); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("treebank: write trees: %w", err)
	}
	return nil
}
