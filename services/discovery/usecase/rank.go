package usecase

import (
	"math/rand"
	"sort"

	"github.com/rdwiputra/jasaku/internal/pkg/geo"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
)

// AnnotateAndRank computes DistanceKm for every provider that has
// coordinates when a position exists, then sorts ascending by distance with
// unknown distances last. The sort is stable: equal-distance and all-nil
// entries keep their original relative order. Input records are cloned.
func AnnotateAndRank(providers []models.ProviderRecord, pos *models.Position) []models.ProviderRecord {
	out := make([]models.ProviderRecord, len(providers))
	for i, p := range providers {
		record := p.Clone()
		if pos != nil && record.Location != nil {
			d := geo.HaversineKm(pos.Latitude, pos.Longitude, record.Location.Latitude, record.Location.Longitude)
			record.DistanceKm = &d
		} else {
			record.DistanceKm = nil
		}
		out[i] = record
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DistanceKm, out[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	return out
}

// NearbyFilter returns providers whose distance lies in [minKm, maxKm],
// preserving rank order. Unknown distances are excluded, as are sub-minKm
// entries, which are treated as acquisition jitter rather than a meaningful
// "arrived" signal.
func NearbyFilter(providers []models.ProviderRecord, minKm, maxKm float64) []models.ProviderRecord {
	out := make([]models.ProviderRecord, 0, len(providers))
	for _, p := range providers {
		if p.DistanceKm == nil {
			continue
		}
		if *p.DistanceKm < minKm || *p.DistanceKm > maxKm {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FallbackSample returns a shuffled copy of the full candidate set capped at
// limit. Used for display variety when no provider qualifies as nearby; the
// pipeline memoizes the result per fetch cycle so the same set does not
// visibly reorder between reads.
func FallbackSample(providers []models.ProviderRecord, limit int, rng *rand.Rand) []models.ProviderRecord {
	out := make([]models.ProviderRecord, len(providers))
	copy(out, providers)

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
