package viewmodel

import "github.com/meeplelog/meeplelog/internal/models"

// Lookup helpers resolve entity references against already-fetched lists.
// They are nil-safe in every direction: an errored list, an empty list, or
// an unknown id all report ok=false so dependent views can render a
// fallback instead of failing.

func gameByID(r Resource[[]models.Game], id string) (models.Game, bool) {
	if !r.OK() {
		return models.Game{}, false
	}
	for _, g := range r.Data {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}

func playerByID(r Resource[[]models.Player], id string) (models.Player, bool) {
	if !r.OK() {
		return models.Player{}, false
	}
	for _, p := range r.Data {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

func locationByID(r Resource[[]models.Location], id string) (models.Location, bool) {
	if !r.OK() {
		return models.Location{}, false
	}
	for _, l := range r.Data {
		if l.ID == id {
			return l, true
		}
	}
	return models.Location{}, false
}
