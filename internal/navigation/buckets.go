package navigation

import (
	"sort"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
)

// Bucket names in display order.
const (
	BucketLedge      = "Ledge Options"
	BucketItems      = "Items"
	BucketMisc       = "Misc"
	BucketStun       = "Stun"
	BucketSleep      = "Sleep"
	BucketFinals     = "Finals"
	BucketSwim       = "Swimming"
	BucketTrips      = "Trips"
	BucketGlide      = "Gliding"
	BucketCrawl      = "Crawling"
	BucketKnockdowns = "Knockdowns"
	BucketGrabs      = "Grabs"
	BucketItemThrows = "Item Throws"
	BucketFootstools = "Footstools"
	BucketMovement   = "Movement"
	BucketSpecials   = "Specials"
	BucketJabs       = "Jabs"
	BucketTilts      = "Tilts"
	BucketSmashes    = "Smashes"
	BucketDashes     = "Dash Attacks"
	BucketAerials    = "Aerials"
	BucketTaunts     = "Taunts"
	BucketTechs      = "Techs"
	BucketDodges     = "Dodges"
	BucketHidden     = "Hidden"
)

// BucketOrder is the order buckets are returned in.
var BucketOrder = []string{
	BucketJabs, BucketTilts, BucketSmashes, BucketDashes, BucketAerials,
	BucketSpecials, BucketGrabs, BucketFinals, BucketLedge, BucketMovement,
	BucketDodges, BucketTechs, BucketKnockdowns, BucketTrips, BucketStun,
	BucketSleep, BucketFootstools, BucketItems, BucketItemThrows, BucketSwim,
	BucketGlide, BucketCrawl, BucketTaunts, BucketMisc, BucketHidden,
}

var tagBuckets = map[Tag]string{
	TagLedge:             BucketLedge,
	TagItem:              BucketItems,
	TagMisc:              BucketMisc,
	TagStun:              BucketStun,
	TagSleep:             BucketSleep,
	TagFinal:             BucketFinals,
	TagSwim:              BucketSwim,
	TagTrip:              BucketTrips,
	TagGlide:             BucketGlide,
	TagCrawl:             BucketCrawl,
	TagKnockdown:         BucketKnockdowns,
	TagAirCatch:          BucketMisc,
	TagGrab:              BucketGrabs,
	TagItemThrow:         BucketItemThrows,
	TagFootstool:         BucketFootstools,
	TagMovement:          BucketMovement,
	TagSpecial:           BucketSpecials,
	TagAttackEnd:         BucketMisc,
	TagJab:               BucketJabs,
	TagTilt:              BucketTilts,
	TagSmash:             BucketSmashes,
	TagDash:              BucketDashes,
	TagAerial:            BucketAerials,
	TagTaunt:             BucketTaunts,
	TagMovementSecondary: BucketMovement,
	TagTech:              BucketTechs,
	TagDodge:             BucketDodges,
	TagNone:              BucketHidden,
	TagDefault:           BucketMisc,
}

// BucketOf returns the bucket a tag belongs to.
func BucketOf(t Tag) string {
	return tagBuckets[t]
}

// Link is one subaction entry of a bucket.
type Link struct {
	Name    string
	Link    string
	Current bool
}

// Bucket is a named, name-sorted list of links.
type Bucket struct {
	Name  string
	Links []Link
}

// Links is the navigation of one fighter.
type Links struct {
	Buckets  []Bucket
	HasGlide bool
	HasCrawl bool

	// Dropped lists attack subactions that matched no attack rule and so
	// appear in no bucket.
	Dropped []string
}

// Bucket returns the links of the named bucket.
func (l Links) Bucket(name string) []Link {
	for _, b := range l.Buckets {
		if b.Name == name {
			return b.Links
		}
	}
	return nil
}

// Options controls Build.
type Options struct {
	IncludeHidden bool
}

// Build classifies every subaction of f. current marks the subaction whose
// page is being generated; pass "" for none. Each unrecognised attack is
// reported to sink.
func Build(f *fighter.Fighter, paths fighter.Paths, current string, sink diag.Sink, opts Options) Links {
	if sink == nil {
		sink = diag.Discard
	}

	byBucket := make(map[string][]Link)
	var dropped []string

	for _, sub := range f.Subactions {
		tag, ok := Classify(sub.Name)
		if !ok {
			sink.Report(diag.Entry{
				Kind:    diag.UnclassifiedAttack,
				Fighter: f.Name,
				Subject: sub.Name,
				Message: "attack subaction matched no attack rule",
			})
			dropped = append(dropped, sub.Name)
			continue
		}

		bucket := BucketOf(tag)
		byBucket[bucket] = append(byBucket[bucket], Link{
			Name:    sub.Name,
			Link:    paths.SubactionPage(f.Name, sub.Name),
			Current: sub.Name == current,
		})
	}

	out := Links{
		HasGlide: len(byBucket[BucketGlide]) > 0,
		HasCrawl: len(byBucket[BucketCrawl]) > 0,
		Dropped:  dropped,
	}

	for _, name := range BucketOrder {
		if name == BucketHidden && !opts.IncludeHidden {
			continue
		}
		links := byBucket[name]
		sort.SliceStable(links, func(i, j int) bool {
			return links[i].Name < links[j].Name
		})
		out.Buckets = append(out.Buckets, Bucket{Name: name, Links: links})
	}

	return out
}
