// Package checkers draws and tracks a hexagram Chinese-checkers board on a
// 2D drawing surface.
//
// # Overview
//
// The board is a six-pointed star made of six 60° rhombi (sextants) around
// a common center. A cell is named by a Coordinate (quad, x, y): the sextant
// index and a position on that sextant's skewed x/y axes, which meet at 60°.
// Board maps coordinates to pixels, creates the board's slots and hands out
// the geometry used by checkers.
//
// # Quick Start
//
//	dc := gg.NewContext(640, 640)
//	dc.ClearWithColor(gg.White)
//
//	board, err := checkers.NewBoard(dc)
//	if err != nil {
//	    return err
//	}
//	if err := board.Generate(gg.Red.Color()); err != nil {
//	    return err
//	}
//
//	red, _ := checkers.NewChecker(board, gg.Red.Color())
//	if err := red.Drop(checkers.NewCoordinate(0, 4, 4)); err != nil {
//	    return err
//	}
//	dc.SavePNG("board.png")
//
// Any type implementing Surface can be drawn on; *gg.Context does. The
// canvas sub-package adds input events and slot labels on top of gg.
//
// # Coordinate System
//
// Pixel coordinates follow gg: origin at the top-left, y increasing down.
// Sextant q is rotated clockwise from the unrotated lattice by (q+1)·60°.
// Sextants share their edges, so several coordinates can name one physical
// cell; Coordinate.Cell returns the canonical one.
//
// # Errors
//
// Errors wrap ErrValidation (bad arguments) or ErrPrecondition (operation
// called in the wrong state) and are returned before anything is drawn.
package checkers
