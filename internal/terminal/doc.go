// Package terminal drives a real VT100 over a byte transport.
//
// The package implements the protocol engine for hardware terminals:
//
//   - Command encoding for the VT100 escape subset (cursor, clears,
//     column modes, scroll regions, attributes, charsets)
//   - Stream demultiplexing of command responses and keyboard input
//     arriving interleaved on one wire
//   - A local state mirror with a cursor cache, so common operations
//     avoid slow round trips to the hardware
//   - Unicode text rendering via charset slot switching, glyph
//     mapping and attribute emulation
//   - Liveness monitoring of a quiet terminal with escalation when it
//     stops answering
//
// # Architecture
//
// The package is organized around one type:
//
//   - Terminal: owns the Transport and all protocol state
//   - Transport: the byte pipe a terminal sits behind, implemented
//     for serial lines and stdio by the transport package
//
// Reads from the terminal pass through a demultiplexer. The VT100
// answers queries with escape frames while the user types on the same
// wire, so every read classifies traffic: complete frames become
// responses, arrow-key frames and plain bytes become input, and
// partial frames are requeued until their remainder arrives. Relative
// arrival order of keystrokes is preserved.
//
// # Timing
//
// The VT100 talks over a slow serial line, so every receive path
// takes an explicit wait budget and reads in small quanta. A frame
// that does not complete within its budget is not an error; the empty
// response tells the caller to decide. Forever waits are available
// where the caller has nothing better to do than block.
//
// # Concurrency
//
// A Terminal is single-threaded on purpose. Both directions of one
// wire belong to one conversation; callers that want concurrency put
// the Terminal behind their own loop.
//
// # Usage
//
// Open a transport, hand it to New, and talk:
//
//	tr, err := transport.OpenSerial("/dev/ttyUSB0", transport.SerialOptions{Baud: transport.Baud9600})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	term, err := terminal.New(tr, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer term.Close()
//
//	term.MoveCursor(5, 10)
//	term.SendText("┌── systems ──┐")
//
//	for {
//	    key, ok, err := term.RecvInput()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if ok {
//	        // Handle the keystroke...
//	    }
//	}
package terminal
