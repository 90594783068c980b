package models

// RawGenre is a single genre as returned by the upstream vendor for one
// content pool. Each pool (movie, series) has its own ID space, so the same
// numeric ID can mean different things in different pools.
type RawGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UnifiedGenre is one cross-pool genre concept assembled from one or more
// pool-specific genre IDs. Both ID sets are non-empty after construction:
// concepts native to only one pool get stand-in IDs on the other side.
type UnifiedGenre struct {
	Key         string `json:"key"` // normalized canonical key, unique
	DisplayName string `json:"displayName"`
	Emoji       string `json:"emoji"`
	MovieIDs    []int  `json:"movieIds"`  // movie-pool genre IDs, deduplicated
	SeriesIDs   []int  `json:"seriesIds"` // series-pool genre IDs, deduplicated
}
