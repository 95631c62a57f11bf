package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxRoyalty is used for prefixing royalty ledger redis keys
	PfxRoyalty = "royalty"

	// KeyProcessedSet is the set of settled source tx hashes
	KeyProcessedSet = "processed"
	// KeyLastRunTime is the unix timestamp of the last completed run
	KeyLastRunTime = "lastRunTime"
	// KeyRunLog is the capped, most-recent-first run log
	KeyRunLog = "runLog"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
