// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides a gg-backed drawing surface for checkers boards.
//
// A Canvas wraps a gg.Context and adds what a board needs beyond drawing:
// an input event registry (checkers.EventTarget) and a label font
// (checkers.TextSurface). The data flow is:
//
//	checkers.Board (geometry) -> Canvas (gg.Context) -> Pixmap -> PNG
//
// # Usage
//
//	cv, err := canvas.New(640, 640,
//	    canvas.WithBackground(color.White),
//	    canvas.WithLabelFont(9),
//	)
//	if err != nil {
//	    return err
//	}
//	defer cv.Close()
//
//	board, _ := checkers.NewBoard(cv, checkers.WithLabels())
//	_ = board.Generate(canvas.MustParseColor("red"))
//
//	board.AddEventListener(canvas.EventClick, func(ev checkers.Event) {
//	    if slot, ok := board.SlotAt(ev.X, ev.Y); ok {
//	        fmt.Println("clicked", slot.Coordinate())
//	    }
//	})
//	cv.Click(320, 320)
//
//	_ = cv.SavePNG("board.png")
//
// # Thread Safety
//
// Drawing is NOT safe for concurrent use, like gg.Context. Listener
// registration and Dispatch may be called from any goroutine.
package canvas
