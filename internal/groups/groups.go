// =============================================================================
// Sales Report - Product Groups
// =============================================================================
//
// Group rules collapse related line-item name variants into a single
// reported name. A rules file holds one rule per line:
//
//   GROUP_NAME | GROUP_REGEX
//
// With a rule "Foo | foo", every product whose name contains a match for
// "foo" is counted under the single name "Foo". Rules are applied in file
// order and the first match wins, so more specific rules belong above
// more general ones.
//
// =============================================================================

package groups

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// delimiter separates the group name from its pattern on a rule line.
const delimiter = " | "

// ConfigError reports a rules file that could not be loaded: an unreadable
// file, a line without the " | " delimiter, or a pattern rejected by the
// regexp engine.
type ConfigError struct {
	Source  string
	Line    int
	Content string
	Err     error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Err != nil && e.Line > 0:
		return fmt.Sprintf("reading %s: line %d: %v", e.Source, e.Line, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("reading %s: line %d: bad line format (missing %q): %s",
			e.Source, e.Line, delimiter, e.Content)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// rule pairs a group name with the compiled pattern that selects its members.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

// Rules is an ordered, immutable set of group rules. The zero value (or a
// nil *Rules) is valid and matches nothing.
type Rules struct {
	rules []rule
}

// LoadFile loads group rules from the file at path.
func LoadFile(path string) (*Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Err: err}
	}
	defer f.Close()
	return Load(f, path)
}

// Load reads group rules from r, one per line, preserving file order.
// source names the origin of the data in error messages.
//
// Any malformed line or invalid pattern fails the whole load with a
// *ConfigError; no partial rule set is returned.
func Load(r io.Reader, source string) (*Rules, error) {
	rs := &Rules{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		name, expr, found := strings.Cut(text, delimiter)
		if !found {
			return nil, &ConfigError{Source: source, Line: line, Content: text}
		}
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, &ConfigError{Source: source, Line: line, Content: text, Err: err}
		}
		rs.rules = append(rs.rules, rule{name: name, pattern: pattern})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigError{Source: source, Err: err}
	}
	return rs, nil
}

// Len returns the number of loaded rules.
func (rs *Rules) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Resolve returns the group name for lineItem, if any rule matches.
//
// Rules are checked in load order and the first whose pattern matches
// anywhere within lineItem wins. The match is a substring containment
// match, not anchored to the whole name. Resolve only reads immutable
// state, so it is safe for concurrent use.
func (rs *Rules) Resolve(lineItem string) (string, bool) {
	if rs == nil {
		return "", false
	}
	for _, r := range rs.rules {
		if r.pattern.MatchString(lineItem) {
			return r.name, true
		}
	}
	return "", false
}
