package schema

// Schema is the parsed root of a form document: an ordered map of named field
// descriptors under the top-level "properties" key. A Schema is immutable once
// parsed; builders treat it as read-only input.
type Schema struct {
	properties *Fields
}

// Fields returns the top-level field map. Never nil.
func (s *Schema) Fields() *Fields {
	if s == nil || s.properties == nil {
		return &Fields{}
	}
	return s.properties
}

// Field describes a single control or nesting point in the schema tree.
//
// Widget takes precedence over Type when both are present; builders fall back
// to Type when Widget is absent or unrecognised. Numeric bounds are pointers so
// absent values can be told apart from explicit zeroes.
type Field struct {
	Name     string
	Title    string
	Widget   string
	Type     string
	Text     string
	Callback string

	Enum []string

	Minimum *float64
	Maximum *float64
	Step    *float64

	// Properties holds the children of a group field.
	Properties *Fields

	// Children holds the subtree built inside a toggle container.
	Children *Fields

	// ChildrenMap maps selector values of a multi_toggle to the subtree
	// instantiated on each add.
	ChildrenMap map[string]*Fields
}

// DisplayTitle returns the title, falling back to the field name.
func (f *Field) DisplayTitle() string {
	if f.Title != "" {
		return f.Title
	}
	return f.Name
}

// Fields is an insertion-ordered collection of named field descriptors.
// Declaration order in the source document is semantically meaningful and is
// preserved through decoding.
type Fields struct {
	names  []string
	byName map[string]*Field
}

// Len reports the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Names returns the field names in declaration order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.names...)
}

// Get returns the named field descriptor.
func (f *Fields) Get(name string) (*Field, bool) {
	if f == nil || f.byName == nil {
		return nil, false
	}
	fld, ok := f.byName[name]
	return fld, ok
}

// Each visits every field in declaration order until fn returns false.
func (f *Fields) Each(fn func(name string, field *Field) bool) {
	if f == nil {
		return
	}
	for _, name := range f.names {
		if !fn(name, f.byName[name]) {
			return
		}
	}
}

func (f *Fields) add(name string, fld *Field) {
	if f.byName == nil {
		f.byName = make(map[string]*Field)
	}
	if _, exists := f.byName[name]; !exists {
		f.names = append(f.names, name)
	}
	f.byName[name] = fld
}
