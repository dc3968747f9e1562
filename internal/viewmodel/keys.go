package viewmodel

import "github.com/meeplelog/meeplelog/internal/querycache"

// Cache keys are structured resource/id/sub tuples so one invalidation can
// target a whole subtree, e.g. games/42 covers games/42/statistics and
// games/42/sessions.

func gamesKey() querycache.Key { return querycache.Key{Resource: "games"} }

func gameKey(id string) querycache.Key {
	return querycache.Key{Resource: "games", ID: id}
}
func gameSubKey(id, sub string) querycache.Key {
	return querycache.Key{Resource: "games", ID: id, Sub: sub}
}

func playersKey() querycache.Key { return querycache.Key{Resource: "players"} }

func playerKey(id string) querycache.Key {
	return querycache.Key{Resource: "players", ID: id}
}
func playerSubKey(id, sub string) querycache.Key {
	return querycache.Key{Resource: "players", ID: id, Sub: sub}
}

func locationsKey() querycache.Key { return querycache.Key{Resource: "locations"} }
func sessionsKey() querycache.Key  { return querycache.Key{Resource: "sessions"} }
func loansKey() querycache.Key     { return querycache.Key{Resource: "loans"} }
func settingsKey() querycache.Key  { return querycache.Key{Resource: "settings"} }

func environmentKey() querycache.Key {
	return querycache.Key{Resource: "environment"}
}

func dashboardKey() querycache.Key {
	return querycache.Key{Resource: "statistics", ID: "dashboard"}
}
func statisticsKey() querycache.Key {
	return querycache.Key{Resource: "statistics"}
}
func compareKey(playerID, opponentID string) querycache.Key {
	return querycache.Key{Resource: "statistics", ID: "compare", Sub: playerID + ":" + opponentID}
}
