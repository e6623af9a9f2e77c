package almanac

import (
	"fmt"
	"sort"
	"strings"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Site identifies a built-in observing site.
type Site string

const (
	SiteGreenwich    Site = "greenwich"
	SiteNewYork      Site = "newyork"
	SiteLosAngeles   Site = "losangeles"
	SiteTokyo        Site = "tokyo"
	SiteSydney       Site = "sydney"
	SiteReykjavik    Site = "reykjavik"
	SiteCapeTown     Site = "capetown"
	SiteQuito        Site = "quito"
	SiteLongyearbyen Site = "longyearbyen"
	SiteMaunaKea     Site = "maunakea"
)

// SiteInfo contains metadata about a built-in site.
type SiteInfo struct {
	ID        Site
	Name      string
	Latitude  float64
	Longitude float64
}

// KnownSites maps site IDs to their full information.
var KnownSites = map[Site]SiteInfo{
	SiteGreenwich:    {ID: SiteGreenwich, Name: "Greenwich", Latitude: 51.4779, Longitude: -0.0015},
	SiteNewYork:      {ID: SiteNewYork, Name: "New York", Latitude: 40.7128, Longitude: -74.0060},
	SiteLosAngeles:   {ID: SiteLosAngeles, Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437},
	SiteTokyo:        {ID: SiteTokyo, Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503},
	SiteSydney:       {ID: SiteSydney, Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093},
	SiteReykjavik:    {ID: SiteReykjavik, Name: "Reykjavík", Latitude: 64.1466, Longitude: -21.9426},
	SiteCapeTown:     {ID: SiteCapeTown, Name: "Cape Town", Latitude: -33.9249, Longitude: 18.4241},
	SiteQuito:        {ID: SiteQuito, Name: "Quito", Latitude: -0.1807, Longitude: -78.4678},
	SiteLongyearbyen: {ID: SiteLongyearbyen, Name: "Longyearbyen", Latitude: 78.2232, Longitude: 15.6267},
	SiteMaunaKea:     {ID: SiteMaunaKea, Name: "Mauna Kea", Latitude: 19.8207, Longitude: -155.4681},
}

// ObserverForSite returns an astro.Observer for the given site ID.
// Site names are matched case-insensitively.
func ObserverForSite(s Site) (astro.Observer, error) {
	info, ok := KnownSites[Site(strings.ToLower(string(s)))]
	if !ok {
		return astro.Observer{}, fmt.Errorf("unknown site %q (known: %s)", s, strings.Join(SiteNames(), ", "))
	}
	return astro.Observer{
		LatDeg: info.Latitude,
		LonDeg: info.Longitude,
		Name:   info.Name,
	}, nil
}

// SiteNames returns the sorted list of built-in site IDs.
func SiteNames() []string {
	names := make([]string, 0, len(KnownSites))
	for id := range KnownSites {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return names
}
