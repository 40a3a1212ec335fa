package query

import (
	"fmt"
	"net/url"
	"strings"
)

// Cache regions, one per resource. Mutations invalidate a whole
// region; keys within a region encode the list parameters or the
// record identifier.
const (
	RegionAuth       = "auth"
	RegionRecipes    = "recipes"
	RegionCategories = "categories"
	RegionTags       = "tags"
	RegionUsers      = "users"
	RegionFavorites  = "favorites"
)

// ListKey builds a cache key for a paginated list call within a
// region. Params are canonically encoded so equal filters always hit
// the same entry.
func ListKey(region string, params url.Values) string {
	if len(params) == 0 {
		return region + ":list"
	}
	return region + ":list:" + params.Encode()
}

// DetailKey builds a cache key for a single record.
func DetailKey(region string, id int) string {
	return fmt.Sprintf("%s:detail:%d", region, id)
}

// SingletonKey builds a cache key for a region's lone entry (current
// user, tag list).
func SingletonKey(region, name string) string {
	return region + ":" + name
}

// regionPrefix is the invalidation prefix for a region.
func regionPrefix(region string) string {
	return strings.TrimSuffix(region, ":") + ":"
}
