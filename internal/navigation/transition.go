package navigation

// Activation is a navigation request produced by a transition.
type Activation struct {
	Path string
}

// Transition computes the state following evt. It returns a non-nil
// activation when the event asks the application to move to another page.
// Events referring to unknown entries leave the state untouched.
func Transition(tree *Tree, state State, evt Event) (State, *Activation) {
	switch evt.Kind {
	case EventOpen:
		state.DrawerOpen = true

	case EventClose, EventBackdrop:
		state.DrawerOpen = false

	case EventSelect:
		entry, exists := tree.Entry(evt.Entry)
		if !exists {
			return state, nil
		}

		if entry.HasChildren() {
			if state.ActiveDropdown == entry.Name {
				state.ActiveDropdown = ""
			} else {
				state.ActiveDropdown = entry.Name
			}

			return state, nil
		}

		state.DrawerOpen = false

		return state, &Activation{Path: entry.Path}

	case EventSelectChild:
		entry, exists := tree.Entry(evt.Entry)
		if !exists {
			return state, nil
		}

		child, exists := entry.Child(evt.Child)
		if !exists {
			return state, nil
		}

		state.DrawerOpen = false

		return state, &Activation{Path: child.Path}

	case EventHoverEnter:
		entry, exists := tree.Entry(evt.Entry)
		if exists && entry.HasChildren() {
			state.ActiveDropdown = entry.Name
		}

	case EventHoverLeave:
		// Leaving any entry collapses the dropdown, including leaf entries.
		if _, exists := tree.Entry(evt.Entry); exists {
			state.ActiveDropdown = ""
		}

	case EventBrand:
		return state, &Activation{Path: HomePath}

	case EventBookCall:
		return state, &Activation{Path: ContactPath}

	case EventConsultation:
		state.DrawerOpen = false

		return state, &Activation{Path: ContactPath}
	}

	return state, nil
}
