// Package iconkit builds and repairs square application icon assets.
//
// # Overview
//
// iconkit has two independent pixel transformations over a Pixmap:
//
//   - Compose and Overlay synthesize a diagonal gradient background and copy
//     the yellow lightning bolt of a previous icon on top of it.
//   - Inpaint flattens an icon with transparent rounded corners by filling
//     every non-opaque pixel with the nearest opaque color along a fixed
//     search pattern.
//
// RoundCorners produces the rounded-corner shape that Inpaint undoes.
//
// # Quick Start
//
//	import "github.com/gogpu/iconkit"
//
//	icon, err := iconkit.ComposeIcon(1024, iconkit.DefaultGradient(),
//	    "icon_old.png", iconkit.BoltFilter())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = icon.SavePNG("icon.png")
//
//	rounded, _ := iconkit.LoadPixmap("icon_rounded.png")
//	square, _ := iconkit.Inpaint(rounded)
//	_ = square.SavePNG("icon_square.png")
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, x increases right and y increases
// down. Coordinates outside a Pixmap read as transparent black.
//
// # Logging
//
// iconkit is silent by default. See SetLogger.
package iconkit
