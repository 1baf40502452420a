// Package viz is the interactive card UI.
//
// Three cards sit side by side, one per algorithm. Focusing a card is the
// terminal stand-in for hovering it: the card glows, lights up its hover
// cells and shows its pseudocode.
//
// # Key Bindings
//
//	←/→ tab - Move focus
//	Enter   - Run the focused card (ignored while it is running)
//	/       - Edit the binary search target
//	D       - Toggle light/dark mode
//	Q       - Quit, cancelling every running card
package viz
