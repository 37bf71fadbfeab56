package redis

import (
	"strings"
	"time"
)

// Key prefixes for the data categories the bot stores in Redis.
const (
	PrefixSettings   = "settings"
	PrefixMarketData = "market_data"
	PrefixPortfolio  = "portfolio"
	PrefixTrade      = "trade"
	PrefixCache      = "cache"
	PrefixAIOutput   = "ai_output"
	PrefixLog        = "log"
	PrefixSession    = "session"
)

// TTL tiers. TTLNone means the key never expires.
const (
	TTLNone      time.Duration = -1
	TTLVeryShort               = time.Minute
	TTLShort                   = 10 * time.Minute
	TTLMedium                  = time.Hour
	TTLLong                    = 8 * time.Hour
	TTLDaily                   = 24 * time.Hour
	TTLWeekly                  = 7 * 24 * time.Hour
	TTLMonthly                 = 30 * 24 * time.Hour
)

// ttlPolicies maps key prefixes to expiration tiers. Longer prefixes are
// matched first so bar-interval entries win over the generic market_data one.
var ttlPolicies = []struct {
	prefix string
	ttl    time.Duration
}{
	{PrefixSettings + ":", TTLNone},
	{PrefixMarketData + ":ticker:", TTLShort},
	{PrefixMarketData + ":bars:1min:", TTLDaily},
	{PrefixMarketData + ":bars:5min:", TTLDaily},
	{PrefixMarketData + ":bars:15min:", TTLDaily},
	{PrefixMarketData + ":bars:1hour:", TTLWeekly},
	{PrefixMarketData + ":bars:1day:", TTLMonthly},
	{PrefixPortfolio + ":current:", TTLMedium},
	{PrefixPortfolio + ":history:", TTLWeekly},
	{PrefixTrade + ":logs:", TTLWeekly},
	{PrefixTrade + ":orders:", TTLDaily},
	{PrefixCache + ":api:", TTLShort},
	{PrefixCache + ":computed:", TTLMedium},
	{PrefixAIOutput + ":prediction:", TTLMedium},
	{PrefixAIOutput + ":analysis:", TTLLong},
	{PrefixLog + ":error:", TTLWeekly},
	{PrefixSession + ":", TTLDaily},
}

// Key joins a prefix and its parts with the schema separator.
func Key(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// TTLFor returns the expiration policy for a key, or TTLShort when no policy
// matches so unknown keys never accumulate forever.
func TTLFor(key string) time.Duration {
	for _, p := range ttlPolicies {
		if strings.HasPrefix(key, p.prefix) {
			return p.ttl
		}
	}
	return TTLShort
}
