// Package server exposes a paintr App over HTTP.
//
// The page under / is a thin client: it forwards pointer and key events to
// the API, or over the /ws WebSocket, and draws the scene JSON it gets back.
// Every request that touches editor state is run on the App's event loop,
// so the App must be running before requests arrive.
package server
