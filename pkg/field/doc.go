// Package field implements the state machine behind a single text input
// widget: a floating label that rises when the field is activated, a focus
// indicator, and an error state driven by validation predicates.
//
// A Field owns its text value and three flags. Activated means the label is
// drawn in its raised position; Focused means the field has input focus or is
// simulating it because validation failed; Error means the most recent
// validation failed. Rendering surfaces read a State snapshot and redraw, hosts
// drive the field through Focus, Blur, Input, IconClick, Test and Clear.
//
// The field is single threaded. Hosts that share a field between goroutines
// must serialize access themselves.
//
// Typical use:
//
//	f := field.New(
//		field.WithLabel("Email"),
//		field.WithInputKind(field.KindEmail),
//		field.WithPredicate(validation.Email()),
//	)
//	f.Mount()
//	f.Focus()
//	f.Input(field.InputEvent{Value: "me@example.com"})
//	f.Blur()
//	if !f.Validate() {
//		// the snapshot now reports Error and Focused
//	}
package field
