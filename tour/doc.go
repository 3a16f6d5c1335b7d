// Package tour loads walkthrough descriptions for spotlight masks.
//
// A tour file is YAML:
//
//	canvas: {width: 375, height: 812}
//	backdrop: "#000000b3"
//	animated: true
//	duration: 300ms
//	easing: inOutCubic
//	steps:
//	  - name: search
//	    target: {x: 20, y: 100, width: 335, height: 40}
//	  - name: avatar
//	    target: {x: 300, y: 40, width: 48, height: 48}
//	    shape: circle
//	    duration: 500ms
//
// Step order, tooltips and progress are left to the caller; the package only
// describes where the spotlight goes and how it gets there.
package tour
