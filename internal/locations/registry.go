package locations

import (
	"sort"
	"strconv"
	"strings"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// suffixSentinel pushes names without a numeric suffix behind the numbered ones.
const suffixSentinel = 1 << 30

// stores is the static table of tracked locations. Loaded once; never mutated.
var stores = []models.Location{
	{Name: "Shopping 1", Lat: 3.4516, Lon: -76.5320},
	{Name: "Shopping 2", Lat: 3.4372, Lon: -76.5225},
	{Name: "Shopping 4", Lat: 3.4531, Lon: -76.5382},
	{Name: "Shopping 5", Lat: 3.4208, Lon: -76.5473},
	{Name: "Shopping Norte", Lat: 3.4845, Lon: -76.5011},
	{Name: "Templo 1", Lat: 3.4420, Lon: -76.5148},
	{Name: "Templo 3", Lat: 3.4367, Lon: -76.5451},
	{Name: "Templo 5", Lat: 3.4290, Lon: -76.5366},
	{Name: "Templo 7", Lat: 3.4689, Lon: -76.5244},
}

// Registry is the immutable store location table, built once at startup and
// passed explicitly to the components that need it.
type Registry struct {
	byName map[string]models.Location
	all    []models.Location
}

func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]models.Location, len(stores))}
	r.all = append(r.all, stores...)
	for _, loc := range r.all {
		r.byName[loc.Name] = loc
	}
	return r
}

// All returns the locations in table order. The slice is a copy.
func (r *Registry) All() []models.Location {
	out := make([]models.Location, len(r.all))
	copy(out, r.all)
	return out
}

// Get looks a location up by its exact name.
func (r *Registry) Get(name string) (models.Location, bool) {
	loc, ok := r.byName[name]
	return loc, ok
}

// Group is a display bucket of locations sharing a name prefix.
type Group struct {
	Prefix    string            `json:"prefix"`
	Locations []models.Location `json:"locations"`
}

// Grouped buckets the registry by the first name token and orders each bucket
// by the numeric suffix, non-numeric suffixes last.
func (r *Registry) Grouped() []Group {
	buckets := make(map[string][]models.Location)
	var order []string
	for _, loc := range r.all {
		prefix := strings.Fields(loc.Name)[0]
		if _, seen := buckets[prefix]; !seen {
			order = append(order, prefix)
		}
		buckets[prefix] = append(buckets[prefix], loc)
	}

	groups := make([]Group, 0, len(order))
	for _, prefix := range order {
		locs := buckets[prefix]
		sort.SliceStable(locs, func(i, j int) bool {
			return suffixOrdinal(locs[i].Name) < suffixOrdinal(locs[j].Name)
		})
		groups = append(groups, Group{Prefix: prefix, Locations: locs})
	}
	return groups
}

func suffixOrdinal(name string) int {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return suffixSentinel
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return suffixSentinel
	}
	return n
}
