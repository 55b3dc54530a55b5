// Package scoring implements the fest points table: a fixed mapping from
// (position, category, type bucket) to a point value. Team standings are
// maintained elsewhere by applying signed deltas derived from these values.
package scoring

// Category is the competition track. Each track has its own points table.
type Category string

const (
	CategoryArt    Category = "ART"
	CategorySports Category = "SPORTS"
)

// Bucket is the scoring bucket an event type falls into. Only "group" and
// "team" events use the group table; everything else scores as individual.
type Bucket string

const (
	BucketIndividual Bucket = "individual"
	BucketGroup      Bucket = "group"
)

// Position is a placement rank in an event.
type Position string

const (
	PositionFirst         Position = "1st"
	PositionSecond        Position = "2nd"
	PositionThird         Position = "3rd"
	PositionParticipation Position = "participation"
)

// ValidPosition reports whether p is one of the four recognized placements.
func ValidPosition(p Position) bool {
	switch p {
	case PositionFirst, PositionSecond, PositionThird, PositionParticipation:
		return true
	}
	return false
}

// pointsTable holds the configured values per category and bucket.
// Participation carries no entry and therefore resolves to 0.
var pointsTable = map[Category]map[Bucket]map[Position]int{
	CategoryArt: {
		BucketIndividual: {
			PositionFirst:  10,
			PositionSecond: 7,
			PositionThird:  5,
		},
		BucketGroup: {
			PositionFirst:  20,
			PositionSecond: 15,
			PositionThird:  10,
		},
	},
	CategorySports: {
		BucketIndividual: {
			PositionFirst:  10,
			PositionSecond: 7,
			PositionThird:  5,
		},
		BucketGroup: {
			PositionFirst:  20,
			PositionSecond: 15,
			PositionThird:  10,
		},
	},
}

// BucketFor maps a stored event type onto its scoring bucket. "group" and
// "team" select the group table; any other value scores as individual.
// API handlers reject unknown event types before they are ever stored, so
// the individual fallback only applies to legacy rows.
func BucketFor(eventType string) Bucket {
	switch eventType {
	case "group", "team":
		return BucketGroup
	default:
		return BucketIndividual
	}
}

// Points returns the configured point value for a placement. Unknown
// combinations (including participation) return 0. Pure lookup, no state.
func Points(pos Position, cat Category, bucket Bucket) int {
	buckets, ok := pointsTable[cat]
	if !ok {
		return 0
	}
	positions, ok := buckets[bucket]
	if !ok {
		return 0
	}
	return positions[pos]
}

// PointsForEventType is Points with the event type bucketing applied.
// Callers must pass the event's stored category and type, never
// client-supplied values.
func PointsForEventType(pos Position, cat Category, eventType string) int {
	return Points(pos, cat, BucketFor(eventType))
}
