// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"github.com/tripctl/tripctl/internal/cacheutil"
	"github.com/tripctl/tripctl/internal/config"
)

// cacheDirs organizes the cache by bucket.
func cacheDirs(be *BackendS3) []string {
	return []string{"s3", be.Bucket}
}

// cacheKey identifies one object version.
func cacheKey(be *BackendS3) string {
	return cacheutil.Key(be.Bucket, be.Key, be.VersionID)
}

// CacheReader reads the cached body of be's object version, if it exists. If
// the cache is disabled, or the entry does not exist, the second return value
// will be false.
func CacheReader(be *BackendS3) (*cacheutil.Entry, bool) {
	return cacheutil.Read(cacheDirs(be), cacheKey(be))
}

func CacheWriter(be *BackendS3, data []byte) error {
	return cacheutil.Write(cacheDirs(be), cacheKey(be), data)
}

// PurgeCache removes entries older than cache.clean hours.
func PurgeCache() error {
	cleanHours, _ := config.GetInt("cache.clean", 0)
	return cacheutil.Purge(cleanHours)
}
