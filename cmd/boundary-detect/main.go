// Command boundary-detect is a thin CLI demonstrating the boundary
// detection library: it decodes an image file, runs Detect or
// DetectEnhanced, prints the found boundaries, and, when --output is
// set, writes a copy with the found outlines drawn on top. gocv is confined to this command: image decode/encode and
// overlay drawing, never the detection math itself.
package main

func main() {
	Execute()
}
