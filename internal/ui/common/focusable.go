package common

// Focusable is implemented by components that participate in keyboard
// focus routing.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Editable is implemented by components that capture raw key input while
// active (text fields, open dropdowns), suppressing global key bindings.
type Editable interface {
	IsEditing() bool
}
