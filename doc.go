// Package pastebin provides a Go client for the Pastebin web API
// (https://pastebin.com/doc_api).
//
// # Installation
//
//	go get github.com/ZayaanRahman/pastebin-client
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		pastebin "github.com/ZayaanRahman/pastebin-client"
//	)
//
//	func main() {
//		c := pastebin.New("your-developer-key")
//
//		ctx := context.Background()
//		if err := c.Login(ctx, "username", "password"); err != nil {
//			log.Fatal(err)
//		}
//
//		// Create a paste
//		paste, err := c.CreatePasteWithOptions(ctx, "Hello, World!", pastebin.CreatePasteOptions{
//			Name:       "hello.txt",
//			Visibility: pastebin.VisibilityUnlisted,
//			Lifespan:   pastebin.Lifespan1Day,
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Paste URL:", paste.URL)
//
//		// Retrieve its raw content
//		text, err := c.FetchRaw(ctx, paste.Key)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Content:", text)
//	}
//
// # Session Defaults
//
// Login stores the session key and the account's default highlighting,
// expiration and visibility on the Client. Later calls fall back to those
// stored values unless a per-call options struct overrides them. Working
// without Login is fine for anonymous use: creating public or unlisted
// pastes and fetching public raw content need no session.
//
// # Custom Configuration
//
//	c := pastebin.New("your-developer-key",
//		pastebin.WithBaseURL("https://pastebin.example.com"),
//		pastebin.WithTimeout(10 * time.Second),
//	)
//
// # Error Handling
//
// Failures carry an *Error whose Code classifies them:
//
//	paste, err := c.CreatePasteWithOptions(ctx, text, opts)
//	if pastebin.IsValidation(err) {
//		// An option value was outside its allowed set; no request was made.
//	}
//	if pastebin.IsAuthentication(err) {
//		// The service rejected the credentials.
//	}
//	if pastebin.IsTransport(err) {
//		// The service answered a non-2xx status.
//	}
//
// # Expiration Times
//
// CreatePaste computes the returned ExpiresAt locally as the creation time
// plus the lifespan's fixed offset. The service derives the authoritative
// expiry from its own clock, so the two can drift by network latency;
// listings report the service's value.
//
// # Concurrency
//
// Methods that only read client state are safe for concurrent use. Login
// writes the stored session defaults, so do not run it concurrently with
// other calls on the same Client; use one Client per session instead.
package pastebin
