// Package registry holds the immutable catalog of instantiable building
// blocks and the symbolic resolution rules that map user-supplied names,
// labels, and aliases onto canonical identifiers.
package registry

import (
	"sort"
	"strings"
)

// Registry is a read-only catalog keyed by (namespace, entry name).
// Namespace and entry names match case-insensitively; port and parameter
// identifiers resolved through Entry methods stay case-sensitive. Construct
// one per process (or per test) and pass it explicitly; there is no ambient
// global.
type Registry struct {
	namespaces map[string]map[string]*Entry
	nsAliases  map[string]string
}

// New builds a registry from the supplied entries. Entry name aliases are
// indexed alongside canonical names.
func New(entries ...*Entry) *Registry {
	r := &Registry{
		namespaces: make(map[string]map[string]*Entry),
		nsAliases:  make(map[string]string),
	}
	for _, entry := range entries {
		ns := strings.ToLower(entry.Namespace)
		byName := r.namespaces[ns]
		if byName == nil {
			byName = make(map[string]*Entry)
			r.namespaces[ns] = byName
		}
		byName[strings.ToLower(entry.Name)] = entry
		for _, alias := range entry.Aliases {
			byName[strings.ToLower(alias)] = entry
		}
	}
	return r
}

// AliasNamespace registers a short namespace alias that expands to the
// canonical namespace before lookup.
func (r *Registry) AliasNamespace(alias, canonical string) {
	r.nsAliases[strings.ToLower(alias)] = strings.ToLower(canonical)
}

// Lookup resolves (namespace, name) to an entry. Namespace aliases expand
// first; both components match case-insensitively. Misses return
// *UnknownEntryError listing the valid alternatives.
func (r *Registry) Lookup(namespace, name string) (*Entry, error) {
	ns := strings.ToLower(namespace)
	if canonical, ok := r.nsAliases[ns]; ok {
		ns = canonical
	}
	byName, ok := r.namespaces[ns]
	if !ok {
		return nil, &UnknownEntryError{Name: name, Available: r.Namespaces()}
	}
	entry, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownEntryError{
			Namespace: ns,
			Name:      name,
			Available: entryNames(byName),
		}
	}
	return entry, nil
}

// LookupRef resolves a "namespace/name" reference. A bare name with no
// separator is tried against every namespace and succeeds only when exactly
// one entry matches.
func (r *Registry) LookupRef(ref string) (*Entry, error) {
	if ns, name, ok := strings.Cut(ref, "/"); ok {
		return r.Lookup(ns, name)
	}
	var found *Entry
	for ns := range r.namespaces {
		entry, err := r.Lookup(ns, ref)
		if err != nil {
			continue
		}
		if found != nil && found != entry {
			return nil, &UnknownEntryError{Name: ref, Available: r.Namespaces()}
		}
		found = entry
	}
	if found == nil {
		return nil, &UnknownEntryError{Name: ref, Available: r.allEntryRefs()}
	}
	return found, nil
}

// Namespaces returns the sorted canonical namespace names.
func (r *Registry) Namespaces() []string {
	names := make([]string, 0, len(r.namespaces))
	for ns := range r.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) allEntryRefs() []string {
	var refs []string
	for _, byName := range r.namespaces {
		for _, entry := range byName {
			refs = append(refs, entry.Ref())
		}
	}
	return sortedUnique(refs)
}

func entryNames(byName map[string]*Entry) []string {
	names := make([]string, 0, len(byName))
	for _, entry := range byName {
		names = append(names, entry.Name)
	}
	return sortedUnique(names)
}
