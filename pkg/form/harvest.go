package form

// harvest walks a registry in declaration order and extracts current values
// by entry tag. Radio groups yield the text of the first checked member and
// are omitted when none is checked. Toggle composites contribute nothing
// themselves; their children live in the flat registry. Multi-toggle entries
// contribute one sub-mapping per live instance and are omitted while empty.
func harvest(reg *Registry) map[string]any {
	data := make(map[string]any)
	reg.Each(func(name string, entry Entry) bool {
		switch entry.Kind {
		case EntrySingle:
			if value, ok := controlValue(entry.Control); ok {
				data[name] = value
			}
		case EntryGroup:
			for _, member := range entry.Group {
				if checked, _ := member.Value().(bool); checked {
					data[name] = member.Text()
					break
				}
			}
		case EntryMultiToggle:
			instances := entry.Multi.instances
			if len(instances) == 0 {
				break
			}
			out := make([]map[string]any, 0, len(instances))
			for _, inst := range instances {
				out = append(out, harvest(inst.fields))
			}
			data[name] = out
		}
		return true
	})
	return data
}

// controlValue extracts the current value of a value-bearing control.
// Buttons, labels, and container kinds are skipped.
func controlValue(ctrl Control) (any, bool) {
	if ctrl == nil {
		return nil, false
	}
	switch ctrl.Kind() {
	case KindLineEdit, KindTextArea, KindComboBox, KindSpinBox, KindDoubleSpinBox, KindCheckbox:
		return ctrl.Value(), true
	}
	return nil, false
}
