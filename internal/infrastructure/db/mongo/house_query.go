package mongo

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

const housePageSize = 10

// buildHouseFilter translates the public search parameters into a Mongo
// filter plus a pagination window. Unset fields impose no constraint; set
// fields combine with AND. The total match count must be computed from the
// returned filter alone, never from the skip/limit window.
//
// Equality filters (city, bedrooms, bathrooms, roomSize, availabilityDate)
// compare the raw query value as provided. rentPerMonth is an inclusive
// integer upper bound; an unparseable value imposes no constraint. houseName
// is a case-insensitive literal substring match.
func buildHouseFilter(p ports.HouseSearch) (filter bson.M, skip int64, limit int64) {
	filter = bson.M{}

	if p.City != "" {
		filter["city"] = p.City
	}
	if p.Bedrooms != "" {
		filter["bedrooms"] = p.Bedrooms
	}
	if p.Bathrooms != "" {
		filter["bathrooms"] = p.Bathrooms
	}
	if p.RoomSize != "" {
		filter["roomSize"] = p.RoomSize
	}
	if p.AvailabilityDate != "" {
		filter["availabilityDate"] = p.AvailabilityDate
	}
	if p.RentPerMonth != "" {
		if rent, err := strconv.Atoi(p.RentPerMonth); err == nil {
			filter["rentPerMonth"] = bson.M{"$lte": rent}
		}
	}
	if p.HouseName != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(p.HouseName), Options: "i"}
	}

	page := 1
	if n, err := strconv.Atoi(p.Page); err == nil && n > 0 {
		page = n
	}

	return filter, int64(page-1) * housePageSize, housePageSize
}
