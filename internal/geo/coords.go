// Package geo maps state and region names to representative coordinates for
// datasets that carry none of their own.
package geo

// Point is a position in decimal degrees, EPSG:4326.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IndiaCentroid is the fallback position for names missing from a lookup
// table. Putting unmapped rows at the country centroid produces a visible
// cluster there; keep the tables complete rather than relying on it.
var IndiaCentroid = Point{Lat: 20.5937, Lon: 78.9629}

// Lookup resolves a state/region name to a representative point. Resolution
// never fails: unknown names get the country centroid.
type Lookup map[string]Point

func (l Lookup) Resolve(name string) Point {
	if p, ok := l[name]; ok {
		return p
	}
	return IndiaCentroid
}

// CraftCoords places crafts at a representative point of their home state.
var CraftCoords = Lookup{
	"Jammu & Kashmir": {34.0837, 74.7973},
	"Uttar Pradesh":   {26.8467, 80.9462},
	"Rajasthan":       {26.9124, 75.7873},
	"Karnataka":       {15.3173, 75.7139},
	"Tamil Nadu":      {11.1271, 78.6569},
	"Gujarat":         {23.0225, 72.5714},
	"Punjab":          {31.1471, 75.3412},
	"West Bengal":     {22.5726, 88.3639},
	"Chhattisgarh":    {21.2787, 81.8661},
	"Madhya Pradesh":  {23.2599, 77.4126},
}

// EventCoords places festivals. It deliberately disagrees with CraftCoords on
// Uttar Pradesh (festival traffic centres on Varanasi, not Lucknow) and keeps
// the combined historical label used by older event records.
var EventCoords = Lookup{
	"Uttar Pradesh/Uttarakhand": {26.8467, 80.9462},
	"Rajasthan":                 {26.9124, 75.7873},
	"Gujarat":                   {23.0225, 72.5714},
	"Nagaland":                  {25.6747, 94.1106},
	"Kerala":                    {10.8505, 76.2711},
	"West Bengal":               {22.5726, 88.3639},
	"Uttar Pradesh":             {25.3176, 82.9739},
	"Ladakh":                    {34.1526, 77.5770},
	"Tamil Nadu":                {11.1271, 78.6569},
	"Assam":                     {26.2006, 92.9376},
	"Maharashtra":               {19.0760, 72.8777},
	"Madhya Pradesh":            {23.2599, 77.4126},
}
