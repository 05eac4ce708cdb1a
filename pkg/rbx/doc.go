// Package rbx provides types, interfaces, and helpers for working with the
// Roblox web API.
//
// # Overview
//
// The rbx package defines the domain types (e.g., User, Group, Badge,
// AssetDetails, Presence) and the interfaces for resource-oriented clients
// (e.g., UsersClient, GroupsClient). A concrete implementation of these
// clients is provided by the rbxclient package, which wires configuration,
// transport, session-cookie authentication, and CSRF token handling. Most
// consumers should import rbxclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := rbxclient.New(ctx, &rbx.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.Users().Get(ctx, 1)
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// # Queries and pagination
//
// Roblox list endpoints page with opaque cursors. Use QueryParams to express
// common list options (cursor, limit, sortOrder, keyword) and the pagination
// helpers to iterate or collect results:
//
//	lister := rbx.PageListerFunc[rbx.Badge](func(ctx context.Context, params *rbx.QueryParams) (*rbx.Page[rbx.Badge], error) {
//	  return cli.Badges().ListForUser(ctx, userID, params)
//	})
//	it := rbx.NewPageIterator(ctx, lister, rbx.NewQueryParams().WithLimit(100))
//	for it.HasNext() {
//	  badge, err := it.Next()
//	  if err != nil { break }
//	  _ = badge
//	}
//
// # Errors
//
// API errors are represented by APIError and ResponseError. Helpers such as
// IsNotFound, IsUnauthorized, and IsTooManyRequests make it easy to branch on
// common Roblox error cases.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, rate limiting, circuit breaking, metrics) and a
// pluggable Cache abstraction with memory, NATS KV, and Redis backends. The
// rbxclient package composes these pieces for a sensible default client;
// applications with advanced needs can also use these primitives directly.
package rbx
