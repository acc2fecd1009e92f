package form

// EntryKind tags the shape of a registry entry. Entries are disambiguated by
// tag, never by structural shape: a two-element radio group is not a toggle.
type EntryKind string

const (
	// EntrySingle holds exactly one control handle.
	EntrySingle EntryKind = "single"
	// EntryGroup holds an ordered radio-button group.
	EntryGroup EntryKind = "group"
	// EntryToggle holds a trigger/container composite.
	EntryToggle EntryKind = "toggle"
	// EntryMultiToggle holds a selector/add/container composite with live
	// subform instances.
	EntryMultiToggle EntryKind = "multi_toggle"
)

// Entry is the tagged union stored per leaf field name. Exactly one of the
// shape members is populated, selected by Kind.
type Entry struct {
	Kind EntryKind

	Control Control
	Group   []Control
	Toggle  *Toggle
	Multi   *MultiToggle
}

// Toggle is the composite behind a toggle field: a trigger button that flips
// the visibility of an initially hidden container.
type Toggle struct {
	Trigger   Control
	Container Container
}

// MultiToggle is the composite behind a multi_toggle field: a selector plus
// add trigger, and a container holding zero or more removable instances.
type MultiToggle struct {
	Selector  Control
	AddButton Control
	// Row is the horizontal unit holding Selector and AddButton.
	Row       Container
	Container Container

	instances []*Instance
}

// Instances returns the live subform instances in add order.
func (m *MultiToggle) Instances() []*Instance {
	if m == nil {
		return nil
	}
	return append([]*Instance(nil), m.instances...)
}

// Instance is one live subform added under a multi_toggle. It owns its own
// field registry; instance values are not merged into the parent registry.
type Instance struct {
	Key    string
	fields *Registry
	row    Container
}

// Fields returns the instance's own control registry.
func (i *Instance) Fields() *Registry {
	return i.fields
}

// Row returns the removable unit holding the instance subform and its remove
// trigger.
func (i *Instance) Row() Container {
	return i.row
}

// Registry is the form-instance-owned mapping from leaf field name to live
// control entry, in declaration order. Only the builder mutates it; the
// harvester reads it.
type Registry struct {
	names  []string
	byName map[string]Entry
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Names returns the registered field names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (Entry, bool) {
	if r == nil || r.byName == nil {
		return Entry{}, false
	}
	entry, ok := r.byName[name]
	return entry, ok
}

// Each visits every entry in declaration order until fn returns false.
func (r *Registry) Each(fn func(name string, entry Entry) bool) {
	if r == nil {
		return
	}
	for _, name := range r.names {
		if !fn(name, r.byName[name]) {
			return
		}
	}
}

func (r *Registry) add(name string, entry Entry) {
	if r.byName == nil {
		r.byName = make(map[string]Entry)
	}
	if _, exists := r.byName[name]; !exists {
		r.names = append(r.names, name)
	}
	r.byName[name] = entry
}

// buttonEntry keeps the declared callback name next to the handle so binding
// does not re-read the schema.
type buttonEntry struct {
	control  Control
	callback string
}

// Buttons maps schema button names to their control handles, used solely for
// callback binding.
type Buttons struct {
	names  []string
	byName map[string]buttonEntry
}

// Names returns the registered button names in declaration order.
func (b *Buttons) Names() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.names...)
}

// Get returns the control registered under name.
func (b *Buttons) Get(name string) (Control, bool) {
	if b == nil || b.byName == nil {
		return nil, false
	}
	entry, ok := b.byName[name]
	if !ok {
		return nil, false
	}
	return entry.control, true
}

func (b *Buttons) add(name string, ctrl Control, callback string) {
	if b.byName == nil {
		b.byName = make(map[string]buttonEntry)
	}
	if _, exists := b.byName[name]; !exists {
		b.names = append(b.names, name)
	}
	b.byName[name] = buttonEntry{control: ctrl, callback: callback}
}
