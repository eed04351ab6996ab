package blocks

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

type AccessPoint struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type" default:"car"`
	Category    string `json:"category,omitempty"`
	Distance    string `json:"distance"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Icon        string `json:"icon" default:"car"`
}

type NearbyLocation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type" default:"shopping"`
	Distance    string `json:"distance"`
	Description string `json:"description"`
	Icon        string `json:"icon" default:"shopping"`
}

type LocationAccessConfig struct {
	Passthrough
	Title               string           `json:"title" default:"Akses Lokasi Strategis"`
	Subtitle            string           `json:"subtitle" default:"Lokasi dengan akses mudah ke berbagai fasilitas kota"`
	Address             string           `json:"address"`
	MapURL              string           `json:"mapUrl" lp:"link"`
	ShowMap             *bool            `json:"showMap" default:"true"`
	AccessPoints        []AccessPoint    `json:"accessPoints" default:"[]"`
	NearbyLocations     []NearbyLocation `json:"nearbyLocations" default:"[]"`
	BackgroundColor     string           `json:"backgroundColor" default:"#f8f9fa"`
	ShowAccessPoints    *bool            `json:"showAccessPoints" default:"true"`
	ShowNearbyLocations *bool            `json:"showNearbyLocations" default:"true"`
}

func (*LocationAccessConfig) Kind() Kind { return KindLocationAccess }

// applyLegacy reads the older grouped shape: a mainLocation object, access
// points nested in categories, and nearbyPlaces with a category instead of a
// type. The old keys stay in place.
func (c *LocationAccessConfig) applyLegacy(fields map[string]json.RawMessage) {
	if c.Address == "" {
		if loc, ok := fields["mainLocation"]; ok {
			c.Address = gjson.GetBytes(loc, "address").String()
		}
	}

	if raw, ok := fields["accessPoints"]; ok && grouped(raw) {
		c.AccessPoints = nil
		gjson.ParseBytes(raw).ForEach(func(_, group gjson.Result) bool {
			category := group.Get("category").String()
			group.Get("items").ForEach(func(_, item gjson.Result) bool {
				c.AccessPoints = append(c.AccessPoints, AccessPoint{
					Name:        item.Get("name").String(),
					Category:    category,
					Distance:    item.Get("distance").String(),
					Time:        item.Get("time").String(),
					Description: item.Get("description").String(),
				})
				return true
			})
			return true
		})
		if c.AccessPoints == nil {
			c.AccessPoints = []AccessPoint{}
		}
	}

	if _, ok := fields["nearbyLocations"]; !ok {
		if raw, ok := fields["nearbyPlaces"]; ok {
			gjson.ParseBytes(raw).ForEach(func(_, place gjson.Result) bool {
				kind := strings.ToLower(place.Get("category").String())
				c.NearbyLocations = append(c.NearbyLocations, NearbyLocation{
					Name:        place.Get("name").String(),
					Type:        kind,
					Distance:    place.Get("distance").String(),
					Description: place.Get("time").String(),
					Icon:        kind,
				})
				return true
			})
		}
	}
}

func grouped(raw json.RawMessage) bool {
	found := false
	gjson.ParseBytes(raw).ForEach(func(_, v gjson.Result) bool {
		found = v.Get("items").IsArray()
		return !found
	})
	return found
}
