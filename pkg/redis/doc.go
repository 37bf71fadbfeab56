// Package redis provides helpers for connecting the trading bot to Redis and
// for naming the keys it stores there.
//
// The connection settings come from the resolved trading configuration (see
// FromResolved) and are optional: the bot degrades gracefully when Redis is
// not available. Connect retries with a bounded interval and honors context
// cancellation, so a missing server fails startup quickly instead of hanging.
//
// The key schema mirrors the bot's storage layout: category prefixes
// (market_data, portfolio, trade, ...) joined by colons, with a TTL tier per
// category so cached market data expires on a schedule while settings persist.
//
//	rcfg, err := redis.FromResolved(cfg)
//	if err != nil {
//	    // malformed retry knob in the process environment
//	}
//	client, err := redis.Connect(ctx, rcfg)
//	if err != nil {
//	    // redis features unavailable, not fatal
//	}
//	key := redis.Key(redis.PrefixMarketData, "ticker", "SPY")
//	ttl := redis.TTLFor(key)
package redis
