package ats

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateRole = errors.New("duplicate role")
	ErrEmptyKeywords = errors.New("empty keyword list")
	ErrEmptyRole     = errors.New("empty role name")
)

type RoleKeywords struct {
	Role     string
	Keywords []string
}

// KeywordTable maps a target role to its ordered keyword list. It is built
// once and never mutated, so one instance may be shared by every caller.
type KeywordTable struct {
	roles  []string
	byRole map[string][]string
}

func NewKeywordTable(entries []RoleKeywords) (*KeywordTable, error) {
	t := &KeywordTable{
		roles:  make([]string, 0, len(entries)),
		byRole: make(map[string][]string, len(entries)),
	}
	for _, e := range entries {
		role := strings.TrimSpace(e.Role)
		if role == "" {
			return nil, ErrEmptyRole
		}
		if _, ok := t.byRole[role]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRole, role)
		}

		kws := make([]string, 0, len(e.Keywords))
		seen := make(map[string]struct{}, len(e.Keywords))
		for _, k := range e.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			kws = append(kws, k)
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyKeywords, role)
		}

		t.roles = append(t.roles, role)
		t.byRole[role] = kws
	}
	return t, nil
}

func MustKeywordTable(entries []RoleKeywords) *KeywordTable {
	t, err := NewKeywordTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Keywords returns a copy of the role's keyword list, or nil for an unknown role.
func (t *KeywordTable) Keywords(role string) []string {
	if t == nil {
		return nil
	}
	kws, ok := t.byRole[role]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

func (t *KeywordTable) Has(role string) bool {
	if t == nil {
		return false
	}
	_, ok := t.byRole[role]
	return ok
}

// Roles lists the table's roles in declaration order.
func (t *KeywordTable) Roles() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.roles))
	copy(out, t.roles)
	return out
}

func DefaultKeywordTable() *KeywordTable {
	return MustKeywordTable([]RoleKeywords{
		{
			Role: "Software Engineer",
			Keywords: []string{
				"java", "python", "javascript", "api", "cloud", "agile", "git", "react",
				"node.js", "sql", "nosql", "microservices", "algorithms", "data structures",
			},
		},
		{
			Role: "Data Scientist",
			Keywords: []string{
				"python", "r", "sql", "machine learning", "statistics", "data visualization",
				"tensorflow", "pytorch", "big data", "hadoop", "spark", "nlp",
			},
		},
		{
			Role: "Product Manager",
			Keywords: []string{
				"agile", "scrum", "roadmap", "user stories", "market research", "kpi", "jira",
				"product strategy", "stakeholder management", "go-to-market",
			},
		},
		{
			Role: "UX/UI Designer",
			Keywords: []string{
				"figma", "sketch", "adobe xd", "user research", "wireframing", "prototyping",
				"user testing", "design thinking", "usability", "interaction design", "visual design",
			},
		},
	})
}
