// Package svgcheck validates SVG icon submissions against the icon library's
// canvas and styling conventions.
//
// svgcheck runs in CI before new icons are merged. It finds the icons that are
// new to the library, parses every SVG version of them and reports all
// violations at once so a submitter can fix everything in one pass.
//
// # Validation
//
// Validate a batch of files:
//
//	report, err := svgcheck.Validate([]string{"icons/go/go-original.svg"})
//	var verr *svgcheck.ValidationError
//	if errors.As(err, &verr) {
//		fmt.Println(verr.Error()) // combined message, one block per file
//	}
//
// A file that is not well-formed XML aborts the batch with a *ParseError.
//
// # New icon discovery
//
// Diff the icon manifest against the built font and resolve the SVG files:
//
//	icons, _ := svgcheck.LoadIconManifest("devicon.json")
//	font, _ := svgcheck.LoadFontManifest("icomoon.json")
//	paths, err := svgcheck.SVGPaths(svgcheck.FindNewIcons(icons, font), "icons")
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/svgcheck/cmd/svgcheck@latest
package svgcheck
