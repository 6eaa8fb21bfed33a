// Package viz renders docking runs in the terminal.
//
// [Model] is a Bubble Tea program that steps an experiment frame by frame and
// draws the chase (C), the target (T) and the standoff point (+) on a braille
// [Canvas]. The side panel shows the controller mode, the last command and
// the safety warning count, with a standoff error chart below it.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial state
//	+/-   - Zoom
//	?     - Toggle help
//	Q     - Quit
package viz
