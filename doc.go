// Package lictool provides license template handling: detecting which
// placeholder markers a license text contains, substituting them with
// user-supplied values, and writing the result without overwriting
// existing files.
package lictool
