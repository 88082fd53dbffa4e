package navigation

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyName      = errors.New("empty name")
	ErrEmptyPath      = errors.New("empty path")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrDuplicateChild = errors.New("duplicate child")
	ErrUnknownEntry   = errors.New("unknown entry")
	ErrUnknownChild   = errors.New("unknown child")
)

// Link is a leaf of the navigation tree.
type Link struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Entry is a top-level item of the navigation tree. Its children are plain
// links, which keeps the tree one level deep.
type Entry struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Children []Link `yaml:"children,omitempty"`
}

func (e Entry) HasChildren() bool {
	return len(e.Children) > 0
}

func (e Entry) Child(name string) (Link, bool) {
	for _, c := range e.Children {
		if c.Name == name {
			return c, true
		}
	}

	return Link{}, false
}

// Tree is an immutable, validated sequence of entries.
type Tree struct {
	entries []Entry
	index   map[string]int
}

// Entries returns a copy of the tree's entries, in order.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		entries[i] = cloneEntry(e)
	}

	return entries
}

func (t *Tree) Entry(name string) (Entry, bool) {
	idx, exists := t.index[name]
	if !exists {
		return Entry{}, false
	}

	return cloneEntry(t.entries[idx]), true
}

func (t *Tree) Len() int {
	return len(t.entries)
}

// NewTree validates entries and returns the corresponding tree.
func NewTree(entries ...Entry) (*Tree, error) {
	tree := &Tree{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.WithStack(ErrEmptyName)
		}

		if e.Path == "" {
			return nil, errors.Wrapf(ErrEmptyPath, "entry '%s'", e.Name)
		}

		if _, exists := tree.index[e.Name]; exists {
			return nil, errors.Wrapf(ErrDuplicateEntry, "entry '%s'", e.Name)
		}

		children := make(map[string]struct{}, len(e.Children))
		for _, c := range e.Children {
			if c.Name == "" {
				return nil, errors.Wrapf(ErrEmptyName, "child of entry '%s'", e.Name)
			}

			if c.Path == "" {
				return nil, errors.Wrapf(ErrEmptyPath, "child '%s' of entry '%s'", c.Name, e.Name)
			}

			if _, exists := children[c.Name]; exists {
				return nil, errors.Wrapf(ErrDuplicateChild, "child '%s' of entry '%s'", c.Name, e.Name)
			}

			children[c.Name] = struct{}{}
		}

		tree.index[e.Name] = len(tree.entries)
		tree.entries = append(tree.entries, cloneEntry(e))
	}

	return tree, nil
}

// MustTree is like NewTree but panics on invalid entries. It is meant for
// literal trees defined at initialization.
func MustTree(entries ...Entry) *Tree {
	tree, err := NewTree(entries...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return tree
}

func cloneEntry(e Entry) Entry {
	clone := Entry{
		Name: e.Name,
		Path: e.Path,
	}

	if len(e.Children) > 0 {
		clone.Children = make([]Link, len(e.Children))
		copy(clone.Children, e.Children)
	}

	return clone
}
