// Package redis provides connection plumbing for the Redis-backed
// pending-enrollment store: a retrying connector, env-based configuration
// and a health probe.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // terminate or fall back to the in-memory pending store
//	}
//	defer client.Close()
//
//	pending := twofa.NewRedisPendingStore(client)
package redis
