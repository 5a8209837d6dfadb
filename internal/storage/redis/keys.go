package redis

import "fmt"

// Key prefix for all courtbot data
const keyPrefix = "courtbot"

// historyKey returns the Redis key for the chat history LIST (newest at the head)
func historyKey() string {
	return fmt.Sprintf("%s:history", keyPrefix)
}
