// Package rbxclient provides the primary entry point for constructing a
// Roblox web API client that implements the rbx.Client interface.
//
// It layers configuration, HTTP transport, session-cookie authentication,
// and CSRF handling on top of the resource interfaces and types defined in
// the rbx package. Most applications should import rbxclient to build a
// client, then use the returned rbx.Client to access resource-specific
// clients, for example Users(), Groups(), Badges(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/rbxweb/rbxweb/pkg/rbx"
//	  "github.com/rbxweb/rbxweb/pkg/rbxclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: anonymous client for the public read-only endpoints.
//	  cli, err := rbxclient.New(&rbx.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.Users().Get(ctx, 1)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(user.Name)
//
//	  // Or with a session cookie for authenticated endpoints:
//	  cli, me, err := rbxclient.NewAuthenticated(ctx, &rbx.Config{
//	    Cookie: "...", // .ROBLOSECURITY value
//	  })
//	  if err != nil { log.Fatal(err) }
//	  log.Println(me.Name)
//	}
package rbxclient
